package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// File storage rejection errors, raised before any bytes are written.
var (
	// ErrUnsupportedFileType is returned for a MIME type outside the allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrFileTooLarge is returned when the payload exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

// Upload describes an inbound file to be stored.
type Upload struct {
	Filename    string    // Original filename, used to derive the stored key.
	ContentType string    // Declared MIME type, checked against the allow-list.
	Size        int64     // Payload size in bytes, checked against the limit.
	Body        io.Reader // File content.
}

// StoredFile describes a successfully stored file.
type StoredFile struct {
	URL  string // Public URL for serving the file.
	Path string // Storage key within the bucket.
}

// FileStorage defines the boundary to the blob store used for product
// images and ticket attachments. Type and size checks happen before the
// write so a rejected upload leaves no partial object behind.
type FileStorage interface {
	// Store validates and persists an upload.
	Store(ctx context.Context, upload Upload) (*StoredFile, error)
}
