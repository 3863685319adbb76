package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

const createCommentsTable = `
CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);
`

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCommentsTable); err != nil {
		return fmt.Errorf("create comments table: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT c.id, c.description, c.user_id, c.post_id, c.created_at, u.first_name, u.last_name, u.profile_pic
FROM comments AS c
JOIN users AS u ON u.id = c.user_id
WHERE c.post_id = ?
ORDER BY c.created_at DESC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentWithAuthor
	for rows.Next() {
		var c domain.CommentWithAuthor
		if err := rows.Scan(
			&c.ID,
			&c.Desc,
			&c.UserID,
			&c.PostID,
			&c.CreatedAt,
			&c.FirstName,
			&c.LastName,
			&c.ProfilePic,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	comment.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO comments (description, user_id, post_id, created_at)
VALUES (?, ?, ?, ?)`,
		comment.Desc,
		comment.UserID,
		comment.PostID,
		comment.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("comment last insert id: %w", err)
	}
	comment.ID = id
	return id, nil
}

func (r *CommentRepository) Update(ctx context.Context, id, ownerID int64, desc string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE comments SET description = ? WHERE id = ? AND user_id = ?`,
		desc, id, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("update comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update comment rows: %w", err)
	}
	return affected, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM comments WHERE id = ? AND user_id = ?`,
		id, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete comment rows: %w", err)
	}
	return affected, nil
}
