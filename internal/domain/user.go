package domain

import "time"

// Roles assigned to accounts. Locally registered accounts always start as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account of the social network.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	ProfilePic   string
	CoverPic     string
	City         string
	Website      string
	// FromAuthProvider distinguishes federated accounts from local ones.
	// Local registration always stores "No".
	FromAuthProvider string
	Role             string
	CreatedAt        time.Time
}
