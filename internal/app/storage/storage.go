package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

// Collection names
const (
	ShortURLsCollection = "short_urls"
	UsersCollection     = "users"
	FilesCollection     = "files"
)

var ErrNotFound = errors.New("not found")

// ErrNotUnique is returned when a document violates a uniqueness constraint
type ErrNotUnique struct {
	Collection string
	Key        string
}

func (err *ErrNotUnique) Error() string {
	return fmt.Sprintf("%s: %q is not unique", err.Collection, err.Key)
}

// NewErrNotUnique
func NewErrNotUnique(collection, key string) error {
	return &ErrNotUnique{Collection: collection, Key: key}
}

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks github.com/ilya-burinskiy/utilapi/internal/app/storage Storage
type Storage interface {
	// InsertShortURL inserts a record for originalURL unless one exists.
	// The returned flag reports whether a new record was created.
	InsertShortURL(ctx context.Context, originalURL string) (models.ShortURL, bool, error)
	FindShortURL(ctx context.Context, id string) (models.ShortURL, error)

	// CreateUser fails with *ErrNotUnique if username is taken
	CreateUser(ctx context.Context, username string) (models.User, error)
	FindUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	AppendExercise(ctx context.Context, userID string, exercise models.Exercise) error

	SaveFile(ctx context.Context, file models.FileMetadata) (models.FileMetadata, error)

	Close() error
}
