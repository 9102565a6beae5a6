package storage

import (
	"context"
	"io"
	"time"
)

// PhotoStore persists assistance photos and produces time-limited
// download links for them.
type PhotoStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
