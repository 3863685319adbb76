package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
	"jessbook/internal/validate"
)

// PostService covers the feed and post lifecycle.
type PostService interface {
	Feed(ctx context.Context, userID int64) ([]domain.PostWithAuthor, error)
	Create(ctx context.Context, userID int64, desc, img string) (*domain.Post, error)
	Delete(ctx context.Context, postID, userID int64) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Feed(ctx context.Context, userID int64) ([]domain.PostWithAuthor, error) {
	posts, err := s.posts.Feed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, userID int64, desc, img string) (*domain.Post, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" || utf8.RuneCountInString(desc) > 1000 {
		return nil, &ValidationError{Fields: validate.Errors{"desc": "Enter a description between 1 and 1000 characters."}}
	}

	post := &domain.Post{
		UserID: userID,
		Desc:   desc,
		Img:    strings.TrimSpace(img),
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, postID, userID int64) error {
	affected, err := s.posts.Delete(ctx, postID, userID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}
