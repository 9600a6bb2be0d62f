// Package storage implements the FileStorage boundary over a gocloud
// blob bucket backed by the local filesystem.
package storage

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

const defaultMaxBytes = 5 << 20

// blobStorage stores uploads in a blob bucket after gating them on MIME
// type and size.
type blobStorage struct {
	bucket   *blob.Bucket
	baseURL  string
	maxBytes int64
	allowed  map[string]struct{}
}

// NewStorage opens the configured fileblob bucket and registers its
// shutdown with the fx lifecycle.
func NewStorage(lc fx.Lifecycle, cfg *config.Config) (service.FileStorage, error) {
	if cfg.Upload == nil {
		return nil, errors.New("upload configuration is missing")
	}

	bucket, err := fileblob.OpenBucket(cfg.Upload.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open upload bucket at %s", cfg.Upload.Dir)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobStorage(bucket, cfg.Upload), nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.UploadConfig) *blobStorage {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedTypes))
	for _, contentType := range cfg.AllowedTypes {
		allowed[strings.ToLower(contentType)] = struct{}{}
	}

	return &blobStorage{
		bucket:   bucket,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: maxBytes,
		allowed:  allowed,
	}
}

// Store validates and persists an upload. Both gates run before any
// bytes are written so a rejected upload leaves no partial object.
func (s *blobStorage) Store(ctx context.Context, upload service.Upload) (*service.StoredFile, error) {
	contentType := strings.ToLower(upload.ContentType)
	if _, ok := s.allowed[contentType]; !ok {
		return nil, service.ErrUnsupportedFileType
	}
	if upload.Size > s.maxBytes {
		return nil, service.ErrFileTooLarge
	}

	key := buildKey(upload.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "open blob writer")
	}

	// LimitReader guards against a body longer than the declared size.
	if _, err := io.Copy(writer, io.LimitReader(upload.Body, s.maxBytes+1)); err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "write blob")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close blob writer")
	}

	return &service.StoredFile{
		URL:  s.baseURL + "/" + key,
		Path: key,
	}, nil
}

// buildKey derives a collision-free storage key, keeping only the
// original extension.
func buildKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	return path.Join(
		time.Now().UTC().Format("2006/01"),
		uuid.NewString()+ext,
	)
}
