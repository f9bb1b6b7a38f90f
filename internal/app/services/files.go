package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
)

// FileAnalyser stores uploads and records their metadata
type FileAnalyser struct {
	store      storage.Storage
	uploadsDir string
}

// NewFileAnalyser creates uploadsDir if it does not exist
func NewFileAnalyser(store storage.Storage, uploadsDir string) (FileAnalyser, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return FileAnalyser{}, fmt.Errorf("failed to create directory %s: %w", uploadsDir, err)
	}

	return FileAnalyser{store: store, uploadsDir: uploadsDir}, nil
}

// Analyse writes content to the uploads directory and saves its metadata
func (a FileAnalyser) Analyse(
	ctx context.Context,
	name, contentType string,
	size int64,
	content io.Reader) (models.FileMetadata, error) {

	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if strings.TrimSpace(name) == "" || base == "." || base == "/" || base == ".." {
		return models.FileMetadata{}, NewValidationError("upfile", "is required")
	}

	path := filepath.Join(a.uploadsDir, base)
	written, err := writeFile(path, content)
	if err != nil {
		logger.Log.Info("failed to store upload", zap.String("path", path), zap.Error(err))
		return models.FileMetadata{}, storageFailure(err)
	}
	if size <= 0 {
		size = written
	}

	file, err := a.store.SaveFile(ctx, models.FileMetadata{Name: name, Type: contentType, Size: size})
	if err != nil {
		logger.Log.Info("failed to save file metadata", zap.String("name", name), zap.Error(err))
		return models.FileMetadata{}, storageFailure(err)
	}

	return file, nil
}

func writeFile(path string, content io.Reader) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(file, content)
	if err != nil {
		file.Close()
		return written, err
	}

	return written, file.Close()
}
