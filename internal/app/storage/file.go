package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
)

// Journal operations
const (
	OpInsert = "insert"
	OpPush   = "push"
)

// Entry is one line of the storage journal
type Entry struct {
	Collection string          `json:"collection"`
	Op         string          `json:"op"`
	ID         string          `json:"_id"`
	Doc        json.RawMessage `json:"doc"`
}

// File storage. Not safe for concurrent use, callers serialize access.
type FileStorage struct {
	filePath string
	file     *os.File
}

// New file storage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{filePath: filePath}
}

// Get journal entries from file
func (fs *FileStorage) Snapshot() ([]Entry, error) {
	file, err := os.Open(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load data from file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	result := make([]Entry, 0)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			logger.Log.Info("skip malformed journal line", zap.Int("line", line), zap.Error(err))
			continue
		}
		result = append(result, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not restore data: %w", err)
	}

	return result, nil
}

// Append entry to the end of the journal
func (fs *FileStorage) Append(e Entry) error {
	if fs.file == nil {
		if err := fs.open(); err != nil {
			return err
		}
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not encode journal entry: %w", err)
	}
	data = append(data, '\n')

	info, err := fs.file.Stat()
	if err != nil {
		return fmt.Errorf("could not append journal entry: %w", err)
	}
	if _, err := fs.file.Write(data); err != nil {
		// drop whatever part of the line made it to disk
		if truncErr := fs.file.Truncate(info.Size()); truncErr != nil {
			return fmt.Errorf("could not append journal entry: %w", errors.Join(err, truncErr))
		}
		return fmt.Errorf("could not append journal entry: %w", err)
	}

	return nil
}

// Rewrite replaces the journal with entries
func (fs *FileStorage) Rewrite(entries []Entry) error {
	if err := fs.Close(); err != nil {
		return err
	}

	tmpPath := fs.filePath + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("could not rewrite journal: %w", err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, e := range entries {
		if err := encoder.Encode(e); err != nil {
			file.Close()
			return fmt.Errorf("could not rewrite journal: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("could not rewrite journal: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not rewrite journal: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath); err != nil {
		return fmt.Errorf("could not replace journal: %w", err)
	}

	return nil
}

// Close journal file
func (fs *FileStorage) Close() error {
	if fs.file == nil {
		return nil
	}

	err := fs.file.Close()
	fs.file = nil
	if err != nil {
		return fmt.Errorf("could not close journal: %w", err)
	}

	return nil
}

func (fs *FileStorage) open() error {
	if dir := filepath.Dir(fs.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(fs.filePath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("could not open journal: %w", err)
	}
	if err := terminateLastLine(file); err != nil {
		file.Close()
		return fmt.Errorf("could not open journal: %w", err)
	}
	fs.file = file

	return nil
}

// terminateLastLine ends a partially written last line so the next entry starts on its own line
func terminateLastLine(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}

	logger.Log.Info("terminate partial journal line", zap.Int64("offset", info.Size()))
	_, err = file.Write([]byte{'\n'})
	return err
}
