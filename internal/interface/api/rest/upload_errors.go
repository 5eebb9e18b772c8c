package rest

import (
	"errors"
	"net/http"

	"jobboard-api/internal/application/services"
)

// uploadErrorStatus maps ingest failures to HTTP responses shared by the
// logo and resume endpoints.
func uploadErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnknownField):
		return http.StatusBadRequest, "unknown upload field"
	case errors.Is(err, services.ErrInvalidFileType):
		return http.StatusBadRequest, "unsupported file type"
	case errors.Is(err, services.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file exceeds the upload size limit"
	default:
		return http.StatusInternalServerError, "failed to store the file"
	}
}
