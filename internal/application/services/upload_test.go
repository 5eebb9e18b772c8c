package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, contentType string, size int64) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte("a"), int(size)))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(MaxUploadSize * 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadService_Ingest(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		filename    string
		contentType string
		size        int64
		wantErr     error
		wantPrefix  string
		wantExt     string
	}{
		{
			name:        "pdf resume accepted",
			field:       FieldResume,
			filename:    "cv.PDF",
			contentType: "application/pdf",
			size:        128,
			wantPrefix:  "/uploads/resumes/",
			wantExt:     ".pdf",
		},
		{
			name:        "png logo accepted",
			field:       FieldLogo,
			filename:    "logo.png",
			contentType: "image/png",
			size:        64,
			wantPrefix:  "/uploads/logos/",
			wantExt:     ".png",
		},
		{
			name:        "exactly at the cap accepted",
			field:       FieldLogo,
			filename:    "big.png",
			contentType: "image/png",
			size:        MaxUploadSize,
			wantPrefix:  "/uploads/logos/",
			wantExt:     ".png",
		},
		{
			name:        "one byte over the cap rejected",
			field:       FieldLogo,
			filename:    "huge.png",
			contentType: "image/png",
			size:        MaxUploadSize + 1,
			wantErr:     ErrFileTooLarge,
		},
		{
			name:        "image as resume rejected",
			field:       FieldResume,
			filename:    "photo.png",
			contentType: "image/png",
			size:        32,
			wantErr:     ErrInvalidFileType,
		},
		{
			name:        "pdf as logo rejected",
			field:       FieldLogo,
			filename:    "doc.pdf",
			contentType: "application/pdf",
			size:        32,
			wantErr:     ErrInvalidFileType,
		},
		{
			name:        "unknown field rejected",
			field:       "attachment",
			filename:    "a.pdf",
			contentType: "application/pdf",
			size:        32,
			wantErr:     ErrUnknownField,
		},
	}

	nameRe := regexp.MustCompile(`^\d{13}-[0-9a-f]{16}(\.[a-z0-9]+)?$`)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			us := &UploadService{root: root, mCounter: testCounter()}

			fh := multipartFile(t, tt.field, tt.filename, tt.contentType, tt.size)
			path, err := us.Ingest(context.Background(), tt.field, fh)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(path, tt.wantPrefix), "path %q", path)

			base := filepath.Base(path)
			assert.Regexp(t, nameRe, base)
			assert.True(t, strings.HasSuffix(base, tt.wantExt), "name %q", base)

			// file landed on disk with the right size
			info, err := os.Stat(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(path, "/"))))
			require.NoError(t, err)
			assert.Equal(t, tt.size, info.Size())
		})
	}
}

func TestUploadService_Ingest_DistinctNames(t *testing.T) {
	root := t.TempDir()
	us := &UploadService{root: root, mCounter: testCounter()}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		fh := multipartFile(t, FieldLogo, "logo.png", "image/png", 8)
		path, err := us.Ingest(context.Background(), FieldLogo, fh)
		require.NoError(t, err)
		require.False(t, seen[path], "duplicate staging name %q", path)
		seen[path] = true
	}
}
