package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"jobboard-api/internal/application/ports"
)

// MaxUploadSize caps the whole upload body; exactly 5 MiB is accepted.
const MaxUploadSize = int64(5 << 20)

const (
	FieldResume = "resume"
	FieldLogo   = "logo"
)

// Validation failures are distinct from I/O errors so the HTTP layer
// can map each to the right client-facing status.
var (
	ErrUnknownField    = errors.New("unknown file field")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
)

// Declared Content-Type is trusted as provided by the client; no
// content sniffing is performed.
var allowedTypes = map[string]map[string]struct{}{
	FieldResume: {
		"application/pdf":    {},
		"application/msword": {},
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	},
	FieldLogo: {
		"image/jpeg":    {},
		"image/png":     {},
		"image/webp":    {},
		"image/svg+xml": {},
	},
}

var stagingDirs = map[string]string{
	FieldResume: "resumes",
	FieldLogo:   "logos",
}

type UploadService struct {
	root     string
	mCounter *prometheus.CounterVec
}

func NewUploadService(root string, mCounter *prometheus.CounterVec) ports.UploadService {
	return &UploadService{
		root:     root,
		mCounter: mCounter,
	}
}

// Ingest validates the multipart upload for the given logical field and
// writes it to staging storage under a collision-resistant name. It
// returns the staging reference (/uploads/<kind>s/<name>) the caller
// persists into the owning row.
func (us *UploadService) Ingest(ctx context.Context, field string, in *multipart.FileHeader) (string, error) {
	dir, ok := stagingDirs[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	if in.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	mimeType := in.Header.Get("Content-Type")
	if _, ok = allowedTypes[field][mimeType]; !ok {
		return "", fmt.Errorf("%w for field %s: %s", ErrInvalidFileType, field, mimeType)
	}

	name := stagingName(in.Filename)
	dst := filepath.Join(us.root, "uploads", dir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	src, err := in.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	defer out.Close()

	if _, err = io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write staging file: %w", err)
	}

	us.mCounter.WithLabelValues("upload_ingested_total").Inc()

	return "/uploads/" + dir + "/" + name, nil
}

// stagingName is <unixMilli>-<16 hex chars><original ext>. The
// timestamp plus random suffix is relied on to avoid collisions between
// concurrent uploads; no existence probe is made.
func stagingName(original string) string {
	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back
		// to the clock rather than erroring the request.
		return fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(original)))
	}
	return fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		hex.EncodeToString(suffix),
		strings.ToLower(filepath.Ext(original)),
	)
}
