package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
)

var allowedSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
}

// URLShortener
type URLShortener struct {
	store storage.Storage
}

// NewURLShortener
func NewURLShortener(store storage.Storage) URLShortener {
	return URLShortener{store: store}
}

// Shorten returns the record for rawURL creating one if it does not exist
func (s URLShortener) Shorten(ctx context.Context, rawURL string) (models.ShortURL, error) {
	if !IsValidURL(rawURL) {
		return models.ShortURL{}, ErrInvalidURL
	}

	record, created, err := s.store.InsertShortURL(ctx, rawURL)
	if err != nil {
		logger.Log.Info("failed to save short url", zap.String("url", rawURL), zap.Error(err))
		return models.ShortURL{}, storageFailure(err)
	}
	if created {
		logger.Log.Debug("short url created", zap.String("id", record.ID))
	}

	return record, nil
}

// Resolve returns original URL by short URL id
func (s URLShortener) Resolve(ctx context.Context, id string) (string, error) {
	record, err := s.store.FindShortURL(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		logger.Log.Info("failed to find short url", zap.String("id", id), zap.Error(err))
		return "", storageFailure(err)
	}

	return record.OriginalURL, nil
}

// IsValidURL reports whether rawURL is an absolute URL with a protocol and a host
func IsValidURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if _, ok := allowedSchemes[scheme]; !ok {
		return false
	}

	return govalidator.IsURL(scheme + rawURL[len(u.Scheme):])
}
