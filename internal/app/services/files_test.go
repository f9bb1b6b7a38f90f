package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage/mocks"
)

func TestFileAnalyserAnalyse(t *testing.T) {
	uploadsDir := filepath.Join(t.TempDir(), "uploads")
	analyser, err := services.NewFileAnalyser(newMapStorage(), uploadsDir)
	require.NoError(t, err)

	file, err := analyser.Analyse(context.Background(), "notes.txt", "text/plain", 0, strings.NewReader("hello"))
	require.NoError(t, err)
	assert.NotEmpty(t, file.ID)
	assert.Equal(t, "notes.txt", file.Name)
	assert.Equal(t, "text/plain", file.Type)
	assert.Equal(t, int64(5), file.Size)

	content, err := os.ReadFile(filepath.Join(uploadsDir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestFileAnalyserKeepsUploadsInsideDir(t *testing.T) {
	uploadsDir := filepath.Join(t.TempDir(), "uploads")
	analyser, err := services.NewFileAnalyser(newMapStorage(), uploadsDir)
	require.NoError(t, err)

	file, err := analyser.Analyse(context.Background(), "../../evil.sh", "text/x-sh", 2, strings.NewReader("ok"))
	require.NoError(t, err)
	assert.Equal(t, "../../evil.sh", file.Name)
	assert.FileExists(t, filepath.Join(uploadsDir, "evil.sh"))

	_, err = analyser.Analyse(context.Background(), "", "text/plain", 0, strings.NewReader(""))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestFileAnalyserStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	storageMock.EXPECT().
		SaveFile(gomock.Any(), models.FileMetadata{Name: "a.txt", Type: "text/plain", Size: 1}).
		Return(models.FileMetadata{}, errors.New("disk full"))
	analyser, err := services.NewFileAnalyser(storageMock, t.TempDir())
	require.NoError(t, err)

	_, err = analyser.Analyse(context.Background(), "a.txt", "text/plain", 1, strings.NewReader("a"))
	assert.ErrorIs(t, err, services.ErrStorageFailure)
}

type compacterStub struct {
	calls atomic.Int32
}

func (c *compacterStub) Compact() error {
	c.calls.Add(1)
	return nil
}

func TestStorageCompactorRun(t *testing.T) {
	stub := &compacterStub{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		services.NewStorageCompactor(stub, time.Millisecond).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return stub.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("compactor did not stop")
	}
}

func TestStorageCompactorDisabled(t *testing.T) {
	stub := &compacterStub{}
	services.NewStorageCompactor(stub, 0).Run(context.Background())
	assert.Equal(t, int32(0), stub.calls.Load())
}
