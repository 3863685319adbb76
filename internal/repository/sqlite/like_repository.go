package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

const createLikesTable = `
CREATE TABLE IF NOT EXISTS likes (
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, post_id)
);
`

type LikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) repository.LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLikesTable); err != nil {
		return fmt.Errorf("create likes table: %w", err)
	}
	return nil
}

func (r *LikeRepository) ListUserIDs(ctx context.Context, postID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT user_id FROM likes WHERE post_id = ?`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("query likes: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return ids, nil
}

func (r *LikeRepository) Create(ctx context.Context, like domain.Like) error {
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO likes (user_id, post_id) VALUES (?, ?)`,
		like.UserID, like.PostID,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert like: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, like domain.Like) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM likes WHERE user_id = ? AND post_id = ?`,
		like.UserID, like.PostID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete like: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete like rows: %w", err)
	}
	return affected, nil
}
