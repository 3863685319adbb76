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

// CommentService covers comments attached to posts.
type CommentService interface {
	ListByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error)
	Add(ctx context.Context, userID, postID int64, desc string) (*domain.Comment, error)
	Update(ctx context.Context, commentID, userID int64, desc string) error
	Delete(ctx context.Context, commentID, userID int64) error
}

type commentService struct {
	comments repository.CommentRepository
}

func NewCommentService(comments repository.CommentRepository) CommentService {
	return &commentService{comments: comments}
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Add(ctx context.Context, userID, postID int64, desc string) (*domain.Comment, error) {
	desc = strings.TrimSpace(desc)
	if err := checkCommentDesc(desc); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Desc:   desc,
		UserID: userID,
		PostID: postID,
	}
	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, commentID, userID int64, desc string) error {
	desc = strings.TrimSpace(desc)
	if err := checkCommentDesc(desc); err != nil {
		return err
	}

	affected, err := s.comments.Update(ctx, commentID, userID, desc)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, commentID, userID int64) error {
	affected, err := s.comments.Delete(ctx, commentID, userID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}

func checkCommentDesc(desc string) error {
	if desc == "" || utf8.RuneCountInString(desc) > 1000 {
		return &ValidationError{Fields: validate.Errors{"desc": "Enter a comment between 1 and 1000 characters."}}
	}
	return nil
}
