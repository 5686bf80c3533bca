package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded dish media and serves it from a public URL.
type MediaStorage interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	Delete(ctx context.Context, key string) error
}
