package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSetTokenCookie_AttributeBundle(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetTokenCookie(rec, SessionCookie, "tok", 7*24*time.Hour)

	c := issuedCookie(t, rec, SessionCookie)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 7*24*60*60, c.MaxAge)
}

func TestSetTokenCookie_MaxAgeMatchesTokenTTL(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetTokenCookie(rec, ResetCookie, "tok", time.Hour)

	c := issuedCookie(t, rec, ResetCookie)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestClearTokenCookie_ReissuesSameBundle(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ClearTokenCookie(rec, ResetCookie)

	c := issuedCookie(t, rec, ResetCookie)
	require.Empty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Negative(t, c.MaxAge)
}
