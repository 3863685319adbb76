package domain

import "time"

// Post is a single publication on a user's feed.
type Post struct {
	ID        int64
	UserID    int64
	Desc      string
	Img       string
	CreatedAt time.Time
}

// PostWithAuthor decorates a post with the author fields the feed needs.
type PostWithAuthor struct {
	Post
	FirstName  string
	LastName   string
	ProfilePic string
}
