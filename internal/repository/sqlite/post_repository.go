package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	description TEXT NOT NULL,
	img TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	post.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (user_id, description, img, created_at)
VALUES (?, ?, ?, ?)`,
		post.UserID,
		post.Desc,
		post.Img,
		post.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) Feed(ctx context.Context, userID int64) ([]domain.PostWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.user_id, p.description, p.img, p.created_at, u.first_name, u.last_name, u.profile_pic
FROM posts AS p
JOIN users AS u ON u.id = p.user_id
WHERE p.user_id = ?
   OR p.user_id IN (SELECT followed_user_id FROM relationships WHERE follower_user_id = ?)
ORDER BY p.created_at DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query feed: %w", err)
	}
	defer rows.Close()

	var posts []domain.PostWithAuthor
	for rows.Next() {
		var p domain.PostWithAuthor
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Desc,
			&p.Img,
			&p.CreatedAt,
			&p.FirstName,
			&p.LastName,
			&p.ProfilePic,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM posts WHERE id = ? AND user_id = ?`,
		id, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete post rows: %w", err)
	}
	return affected, nil
}
