package storage

import (
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobStorage(bucket, &config.UploadConfig{
		BaseURL:      "http://localhost:8080/uploads/",
		MaxBytes:     64,
		AllowedTypes: []string{"image/png", "image/jpeg"},
	})
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("stores an allowed upload and returns its URL", func(t *testing.T) {
		t.Parallel()

		storage := newTestStorage(t)

		stored, err := storage.Store(t.Context(), service.Upload{
			Filename:    "product.PNG",
			ContentType: "image/png",
			Size:        11,
			Body:        strings.NewReader("png-content"),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stored.URL, "http://localhost:8080/uploads/"))
		assert.True(t, strings.HasSuffix(stored.Path, ".png"))

		exists, err := storage.bucket.Exists(t.Context(), stored.Path)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rejects a disallowed MIME type before writing", func(t *testing.T) {
		t.Parallel()

		storage := newTestStorage(t)

		_, err := storage.Store(t.Context(), service.Upload{
			Filename:    "shell.sh",
			ContentType: "application/x-sh",
			Size:        4,
			Body:        strings.NewReader("nope"),
		})
		require.ErrorIs(t, err, service.ErrUnsupportedFileType)
	})

	t.Run("rejects an oversized upload before writing", func(t *testing.T) {
		t.Parallel()

		storage := newTestStorage(t)

		_, err := storage.Store(t.Context(), service.Upload{
			Filename:    "big.jpg",
			ContentType: "image/jpeg",
			Size:        1024,
			Body:        strings.NewReader(strings.Repeat("x", 1024)),
		})
		require.ErrorIs(t, err, service.ErrFileTooLarge)
	})
}
