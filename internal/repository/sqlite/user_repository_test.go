package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

func TestUserCreate_DuplicateEmailMapsToSentinel(t *testing.T) {
	t.Parallel()
	users, _, _ := openTestDB(t)
	ctx := context.Background()

	createTestUser(t, users, "jane@x.com")

	_, err := users.Create(ctx, &domain.User{
		FirstName:        "Janet",
		LastName:         "Doe",
		Email:            "jane@x.com",
		PasswordHash:     "hash",
		FromAuthProvider: "No",
		Role:             domain.RoleUser,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserGet_RoundTrip(t *testing.T) {
	t.Parallel()
	users, _, _ := openTestDB(t)
	ctx := context.Background()

	id := createTestUser(t, users, "jane@x.com")

	byEmail, err := users.GetByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "Jane", byEmail.FirstName)
	assert.False(t, byEmail.CreatedAt.IsZero())

	byID, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", byID.Email)

	_, err = users.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
