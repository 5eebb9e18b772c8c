package ports

import (
	"context"
	"mime/multipart"
)

// UploadService validates a multipart field upload and writes it to
// local staging storage, returning the staging reference the owning row
// stores until migration.
type UploadService interface {
	Ingest(ctx context.Context, field string, in *multipart.FileHeader) (string, error)
}
