package storage

import (
	"context"
	"io"
)

// Uploader persists an object and returns the path it was stored under.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
	// Delete removes an object written by Upload; a missing object is not an error.
	Delete(ctx context.Context, objectName string) error
}
