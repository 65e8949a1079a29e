package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded media objects and returns publicly reachable URLs.
type MediaStorage interface {
	// Upload writes the object under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Close() error
}
