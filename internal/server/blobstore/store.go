// Package blobstore handles binary object storage for note images: uploads
// and time-limited presigned retrieval links.
package blobstore

import (
	"context"
	"time"
)

// Uploader stores binary objects and mints signed read links for them.
type Uploader interface {
	// Upload writes data under key with the given content type.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PresignGet returns a signed URL granting read access to key for the
	// given duration.
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
