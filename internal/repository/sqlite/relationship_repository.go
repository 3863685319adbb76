package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

const createRelationshipsTable = `
CREATE TABLE IF NOT EXISTS relationships (
	follower_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	followed_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (follower_user_id, followed_user_id)
);
`

type RelationshipRepository struct {
	db *sql.DB
}

func NewRelationshipRepository(db *sql.DB) repository.RelationshipRepository {
	return &RelationshipRepository{db: db}
}

func (r *RelationshipRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRelationshipsTable); err != nil {
		return fmt.Errorf("create relationships table: %w", err)
	}
	return nil
}

func (r *RelationshipRepository) ListFollowerIDs(ctx context.Context, followedUserID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT follower_user_id FROM relationships WHERE followed_user_id = ?`,
		followedUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("query relationships: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relationships: %w", err)
	}
	return ids, nil
}

func (r *RelationshipRepository) Create(ctx context.Context, rel domain.Relationship) error {
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO relationships (follower_user_id, followed_user_id) VALUES (?, ?)`,
		rel.FollowerUserID, rel.FollowedUserID,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert relationship: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert relationship: %w", err)
	}
	return nil
}

func (r *RelationshipRepository) Delete(ctx context.Context, rel domain.Relationship) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM relationships WHERE follower_user_id = ? AND followed_user_id = ?`,
		rel.FollowerUserID, rel.FollowedUserID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete relationship: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete relationship rows: %w", err)
	}
	return affected, nil
}
