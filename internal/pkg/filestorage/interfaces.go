package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations.
type FileStorage interface {
	// SaveFile validates an upload against the storage policy, persists it
	// under a collision-resistant name and returns the public retrieval path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error (the operation is idempotent).
	DeleteFile(filePath string) error

	// URLFor maps a stored reference to its public retrieval path.
	URLFor(reference string) string
}
