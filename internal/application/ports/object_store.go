package ports

import (
	"context"
	"io"
)

// ObjectStore is the durable blob storage the migrator uploads into.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error
}
