package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
)

// Compacter
type Compacter interface {
	Compact() error
}

// StorageCompactor periodically compacts a journaled storage
type StorageCompactor struct {
	storage  Compacter
	interval time.Duration
}

// NewStorageCompactor
func NewStorageCompactor(storage Compacter, interval time.Duration) StorageCompactor {
	return StorageCompactor{
		storage:  storage,
		interval: interval,
	}
}

// Run compacts storage every interval until ctx is done.
// Non-positive interval disables compaction.
func (c StorageCompactor) Run(ctx context.Context) {
	if c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.storage.Compact(); err != nil {
				logger.Log.Info("storage compaction error", zap.Error(err))
			}
		}
	}
}

// Start runs compactor in a new goroutine
func (c StorageCompactor) Start(ctx context.Context) {
	go c.Run(ctx)
}
