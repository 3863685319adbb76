package domain

// Like marks a post as liked by a user.
type Like struct {
	UserID int64
	PostID int64
}

// Relationship records that FollowerUserID follows FollowedUserID.
type Relationship struct {
	FollowerUserID int64
	FollowedUserID int64
}
