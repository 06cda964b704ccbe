package filestorage

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// LocalStorage persists uploaded files on the local filesystem under a single
// content directory which the server exposes read-only at baseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
	policy   *UploadPolicy
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory files are written to; baseURL is the public path prefix under
// which they are served back (e.g. "/uploads").
func NewLocalStorage(basePath, baseURL string, policy *UploadPolicy) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	if policy == nil {
		policy = NewUploadPolicy()
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		policy:   policy,
	}, nil
}

// generateFilename builds a collision-resistant name embedding the creation
// timestamp and a random suffix, keeping the original extension.
func generateFilename(originalName string) string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		// crypto/rand failing is effectively unreachable; fall back to the clock.
		suffix = big.NewInt(time.Now().UnixNano() % 1_000_000_000)
	}
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), suffix.Int64(), ext)
}

// SaveFile validates the upload against the policy and writes it to disk.
// Nothing is retained when validation fails. Returns the public retrieval path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if err := ls.policy.Validate(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := generateFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file before surfacing the error.
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := ls.URLFor(storedName)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", storedName).
		Str("accessible_path", accessiblePath).
		Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a file from storage. It accepts the stored reference as
// persisted (e.g. "/uploads/1714...-42.pdf"). A missing file is treated as a
// successful delete.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// URLFor maps a stored reference to the public retrieval path.
func (ls *LocalStorage) URLFor(reference string) string {
	filename := filepath.Base(reference)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}
	return ls.baseURL + "/" + filename
}

// GetFullPath returns the physical filesystem path for a stored reference.
func (ls *LocalStorage) GetFullPath(reference string) string {
	filename := filepath.Base(reference)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
