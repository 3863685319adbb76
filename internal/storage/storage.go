package storage

import (
	"context"
	"io"
	"time"
)

// Service stores user-uploaded media (avatars, post images) in remote object
// storage.
type Service interface {
	// Upload stores the object and returns a time-limited URL the client can
	// embed immediately.
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error)
	GetObjectURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}
