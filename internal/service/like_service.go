package service

import (
	"context"
	"errors"
	"fmt"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

// LikeService covers post likes.
type LikeService interface {
	ListUserIDs(ctx context.Context, postID int64) ([]int64, error)
	Like(ctx context.Context, userID, postID int64) error
	Unlike(ctx context.Context, userID, postID int64) error
}

type likeService struct {
	likes repository.LikeRepository
}

func NewLikeService(likes repository.LikeRepository) LikeService {
	return &likeService{likes: likes}
}

func (s *likeService) ListUserIDs(ctx context.Context, postID int64) ([]int64, error) {
	ids, err := s.likes.ListUserIDs(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return ids, nil
}

// Like is idempotent: liking an already liked post is not an error.
func (s *likeService) Like(ctx context.Context, userID, postID int64) error {
	if err := s.likes.Create(ctx, domain.Like{UserID: userID, PostID: postID}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}

func (s *likeService) Unlike(ctx context.Context, userID, postID int64) error {
	if _, err := s.likes.Delete(ctx, domain.Like{UserID: userID, PostID: postID}); err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	return nil
}
