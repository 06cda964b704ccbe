package filestorage

import (
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/webslearn/webslearn/internal/pkg/apperrors"
)

// MaxUploadSize is the fixed ceiling for uploaded files (100 MiB).
const MaxUploadSize = 100 * 1024 * 1024

// allowedMimeTypes is the explicit allow-list for lesson uploads: documents,
// common video containers and common image formats.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"video/mp4":       {},
	"video/avi":       {},
	"video/x-msvideo": {},
	"video/mov":       {},
	"video/quicktime": {},
	"video/wmv":       {},
	"video/x-ms-wmv":  {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/gif":       {},
}

// UploadPolicy validates uploads against the type allow-list and size ceiling.
type UploadPolicy struct {
	maxSize int64
}

// NewUploadPolicy creates an UploadPolicy with the default size ceiling.
func NewUploadPolicy() *UploadPolicy {
	return &UploadPolicy{maxSize: MaxUploadSize}
}

// Validate checks an upload before any bytes are retained. Returns
// apperrors.ErrFileMissing, ErrFileTypeNotAllowed or ErrFileTooLarge.
func (p *UploadPolicy) Validate(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrFileMissing
	}

	if fileHeader.Size > p.maxSize {
		return apperrors.ErrFileTooLarge
	}

	if _, ok := allowedMimeTypes[normalizeContentType(fileHeader)]; !ok {
		return apperrors.ErrFileTypeNotAllowed
	}

	return nil
}

// normalizeContentType resolves the declared content type of an upload,
// falling back to the filename extension when the part carries no type.
func normalizeContentType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	// Strip parameters such as "; charset=utf-8".
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
