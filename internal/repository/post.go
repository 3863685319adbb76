package repository

import (
	"context"

	"jessbook/internal/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	// Feed returns the user's own posts plus posts of every user they follow,
	// newest first, with author display fields joined in.
	Feed(ctx context.Context, userID int64) ([]domain.PostWithAuthor, error)
	// Delete removes the post only when ownerID matches; it reports the number
	// of rows removed so callers can distinguish "not yours" from "gone".
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Init(ctx context.Context) error
	ListByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error)
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	Update(ctx context.Context, id, ownerID int64, desc string) (int64, error)
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
}

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Init(ctx context.Context) error
	ListUserIDs(ctx context.Context, postID int64) ([]int64, error)
	Create(ctx context.Context, like domain.Like) error
	Delete(ctx context.Context, like domain.Like) (int64, error)
}

// RelationshipRepository defines persistence operations for follow relationships.
type RelationshipRepository interface {
	Init(ctx context.Context) error
	ListFollowerIDs(ctx context.Context, followedUserID int64) ([]int64, error)
	Create(ctx context.Context, rel domain.Relationship) error
	Delete(ctx context.Context, rel domain.Relationship) (int64, error)
}
