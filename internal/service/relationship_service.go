package service

import (
	"context"
	"errors"
	"fmt"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
	"jessbook/internal/validate"
)

// RelationshipService covers follow relationships between users.
type RelationshipService interface {
	FollowerIDs(ctx context.Context, followedUserID int64) ([]int64, error)
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
}

type relationshipService struct {
	relationships repository.RelationshipRepository
}

func NewRelationshipService(relationships repository.RelationshipRepository) RelationshipService {
	return &relationshipService{relationships: relationships}
}

func (s *relationshipService) FollowerIDs(ctx context.Context, followedUserID int64) ([]int64, error) {
	ids, err := s.relationships.ListFollowerIDs(ctx, followedUserID)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return ids, nil
}

// Follow is idempotent; following yourself is rejected.
func (s *relationshipService) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return &ValidationError{Fields: validate.Errors{"followedUserId": "You cannot follow yourself."}}
	}
	if err := s.relationships.Create(ctx, domain.Relationship{FollowerUserID: followerID, FollowedUserID: followedID}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("follow user: %w", err)
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if _, err := s.relationships.Delete(ctx, domain.Relationship{FollowerUserID: followerID, FollowedUserID: followedID}); err != nil {
		return fmt.Errorf("unfollow user: %w", err)
	}
	return nil
}
