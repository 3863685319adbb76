package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

func openTestDB(t *testing.T) (repository.UserRepository, repository.PostRepository, repository.RelationshipRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	relationships := NewRelationshipRepository(db)

	ctx := context.Background()
	require.NoError(t, users.Init(ctx))
	require.NoError(t, posts.Init(ctx))
	require.NoError(t, relationships.Init(ctx))

	return users, posts, relationships
}

func createTestUser(t *testing.T, users repository.UserRepository, email string) int64 {
	t.Helper()
	id, err := users.Create(context.Background(), &domain.User{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            email,
		PasswordHash:     "hash",
		FromAuthProvider: "No",
		Role:             domain.RoleUser,
	})
	require.NoError(t, err)
	return id
}

func TestFeed_IncludesFollowedUsersPostsNewestFirst(t *testing.T) {
	t.Parallel()
	users, posts, relationships := openTestDB(t)
	ctx := context.Background()

	janeID := createTestUser(t, users, "jane@x.com")
	johnID := createTestUser(t, users, "john@x.com")

	require.NoError(t, relationships.Create(ctx, domain.Relationship{
		FollowerUserID: janeID,
		FollowedUserID: johnID,
	}))

	_, err := posts.Create(ctx, &domain.Post{UserID: janeID, Desc: "jane's post"})
	require.NoError(t, err)
	// distinct timestamps so the ordering is deterministic
	time.Sleep(10 * time.Millisecond)
	_, err = posts.Create(ctx, &domain.Post{UserID: johnID, Desc: "john's post"})
	require.NoError(t, err)

	feed, err := posts.Feed(ctx, janeID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "john's post", feed[0].Desc)
	assert.Equal(t, "jane's post", feed[1].Desc)
	assert.Equal(t, "Jane", feed[1].FirstName)
}

func TestFeed_ExcludesUnfollowedUsersPosts(t *testing.T) {
	t.Parallel()
	users, posts, _ := openTestDB(t)
	ctx := context.Background()

	janeID := createTestUser(t, users, "jane@x.com")
	johnID := createTestUser(t, users, "john@x.com")

	_, err := posts.Create(ctx, &domain.Post{UserID: johnID, Desc: "john's post"})
	require.NoError(t, err)

	feed, err := posts.Feed(ctx, janeID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestDelete_OnlyOwnerRowsAffected(t *testing.T) {
	t.Parallel()
	users, posts, _ := openTestDB(t)
	ctx := context.Background()

	janeID := createTestUser(t, users, "jane@x.com")
	johnID := createTestUser(t, users, "john@x.com")

	postID, err := posts.Create(ctx, &domain.Post{UserID: janeID, Desc: "jane's post"})
	require.NoError(t, err)

	affected, err := posts.Delete(ctx, postID, johnID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = posts.Delete(ctx, postID, janeID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}
