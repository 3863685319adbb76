package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_Valid(t *testing.T) {
	t.Parallel()

	errs := Registration("Jane", "Doe", "jane@x.com", "Abc123!", "Abc123!")
	assert.Empty(t, errs)
}

func TestRegistration_AllRulesEvaluated(t *testing.T) {
	t.Parallel()

	errs := Registration("J", "", "not-an-email", "short", "different")

	require.Len(t, errs, 5)
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "lastName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "confirmPswd")
}

func TestRegistration_TrimsFields(t *testing.T) {
	t.Parallel()

	errs := Registration("  Jane  ", " Doe ", "  jane@x.com ", " Abc123! ", "Abc123!  ")
	assert.Empty(t, errs)
}

func TestRegistration_NameBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		firstName string
		lastName  string
		wantField string
	}{
		{"first name too short", "J", "Doe", "firstName"},
		{"first name too long", strings.Repeat("a", 36), "Doe", "firstName"},
		{"last name empty", "Jane", "", "lastName"},
		{"last name too long", "Jane", strings.Repeat("a", 36), "lastName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Registration(tt.firstName, tt.lastName, "jane@x.com", "Abc123!", "Abc123!")
			assert.Contains(t, errs, tt.wantField)
			assert.Len(t, errs, 1)
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Names("Jane", "Doe"))

	errs := Names("J", "")
	require.Len(t, errs, 2)
	assert.Equal(t, "Enter a name between 2 and 35 characters.", errs["firstName"])
	assert.Equal(t, "Enter a name between 1 and 35 characters.", errs["lastName"])
}

func TestPasswordReset_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		confirm  string
		want     []string
	}{
		{"valid", "Abc123!", "Abc123!", nil},
		{"too short", "A1!", "A1!", []string{"password"}},
		{"too long", strings.Repeat("a", 199) + "1!", strings.Repeat("a", 199) + "1!", []string{"password"}},
		{"no digit", "Abcdef!", "Abcdef!", []string{"password"}},
		{"no symbol", "Abcdef1", "Abcdef1", []string{"password"}},
		{"mismatch", "Abc123!", "Abc124!", []string{"confirmPswd"}},
		{"both invalid", "short", "other", []string{"password", "confirmPswd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := PasswordReset(tt.password, tt.confirm)
			assert.Len(t, errs, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidEmail("jane@x.com"))
	assert.True(t, ValidEmail(" jane@x.com "))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("jane"))
	assert.False(t, ValidEmail("jane@x"))
	assert.False(t, ValidEmail("jane doe@x.com"))
	assert.False(t, ValidEmail("jane@@x.com"))
	assert.False(t, ValidEmail("j@"+strings.Repeat("a", 320)+".com"))
}
