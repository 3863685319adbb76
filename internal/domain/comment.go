package domain

import "time"

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64
	Desc      string
	UserID    int64
	PostID    int64
	CreatedAt time.Time
}

// CommentWithAuthor decorates a comment with author display fields.
type CommentWithAuthor struct {
	Comment
	FirstName  string
	LastName   string
	ProfilePic string
}
