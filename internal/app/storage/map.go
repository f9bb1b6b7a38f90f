package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

// Inmemory document storage optionally backed by a journal file
type MapStorage struct {
	mu      sync.RWMutex
	fs      *FileStorage
	randGen RandHexStringGenerator

	shortURLs          []models.ShortURL
	indexOnShortURLID  map[string]int
	indexOnOriginalURL map[string]int
	users              []models.User
	indexOnUserID      map[string]int
	indexOnUsername    map[string]int
	files              []models.FileMetadata
	indexOnFileID      map[string]int
}

// New inmemory storage. fs may be nil.
func NewMapStorage(fs *FileStorage, randGen RandHexStringGenerator) *MapStorage {
	return &MapStorage{
		fs:                 fs,
		randGen:            randGen,
		shortURLs:          make([]models.ShortURL, 0),
		indexOnShortURLID:  make(map[string]int),
		indexOnOriginalURL: make(map[string]int),
		users:              make([]models.User, 0),
		indexOnUserID:      make(map[string]int),
		indexOnUsername:    make(map[string]int),
		files:              make([]models.FileMetadata, 0),
		indexOnFileID:      make(map[string]int),
	}
}

// Insert short URL if there is no record with the same original URL
func (ms *MapStorage) InsertShortURL(ctx context.Context, originalURL string) (models.ShortURL, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if idx, ok := ms.indexOnOriginalURL[originalURL]; ok {
		return ms.shortURLs[idx], false, nil
	}

	id, err := generateID(ms.randGen, func(id string) bool {
		_, taken := ms.indexOnShortURLID[id]
		return taken
	})
	if err != nil {
		return models.ShortURL{}, false, err
	}

	record := models.ShortURL{ID: id, OriginalURL: originalURL}
	if err := ms.journal(ShortURLsCollection, OpInsert, id, record); err != nil {
		return models.ShortURL{}, false, err
	}
	ms.insertShortURL(record)

	return record, true, nil
}

// Find short URL by id
func (ms *MapStorage) FindShortURL(ctx context.Context, id string) (models.ShortURL, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	idx, ok := ms.indexOnShortURLID[id]
	if !ok {
		return models.ShortURL{}, ErrNotFound
	}

	return ms.shortURLs[idx], nil
}

// Create user
func (ms *MapStorage) CreateUser(ctx context.Context, username string) (models.User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.indexOnUsername[username]; ok {
		return models.User{}, NewErrNotUnique(UsersCollection, username)
	}

	id, err := generateID(ms.randGen, func(id string) bool {
		_, taken := ms.indexOnUserID[id]
		return taken
	})
	if err != nil {
		return models.User{}, err
	}

	user := models.User{ID: id, Username: username, Exercises: make([]models.Exercise, 0)}
	if err := ms.journal(UsersCollection, OpInsert, id, user); err != nil {
		return models.User{}, err
	}
	ms.insertUser(user)

	return cloneUser(user), nil
}

// Find user by id
func (ms *MapStorage) FindUser(ctx context.Context, id string) (models.User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	idx, ok := ms.indexOnUserID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}

	return cloneUser(ms.users[idx]), nil
}

// List users in insertion order
func (ms *MapStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]models.User, len(ms.users))
	for i := range ms.users {
		result[i] = cloneUser(ms.users[i])
	}

	return result, nil
}

// Append exercise to user's log
func (ms *MapStorage) AppendExercise(ctx context.Context, userID string, exercise models.Exercise) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	idx, ok := ms.indexOnUserID[userID]
	if !ok {
		return ErrNotFound
	}

	if err := ms.journal(UsersCollection, OpPush, userID, exercise); err != nil {
		return err
	}
	ms.users[idx].Exercises = append(ms.users[idx].Exercises, exercise)

	return nil
}

// Save file metadata
func (ms *MapStorage) SaveFile(ctx context.Context, file models.FileMetadata) (models.FileMetadata, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	id, err := generateID(ms.randGen, func(id string) bool {
		_, taken := ms.indexOnFileID[id]
		return taken
	})
	if err != nil {
		return models.FileMetadata{}, err
	}

	file.ID = id
	if err := ms.journal(FilesCollection, OpInsert, id, file); err != nil {
		return models.FileMetadata{}, err
	}
	ms.files = append(ms.files, file)
	ms.indexOnFileID[id] = len(ms.files) - 1

	return file, nil
}

// Compact rewrites the journal so that it holds one insert per document
func (ms *MapStorage) Compact() error {
	if ms.fs == nil {
		return nil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	entries := make([]Entry, 0, len(ms.shortURLs)+len(ms.users)+len(ms.files))
	for _, r := range ms.shortURLs {
		e, err := newEntry(ShortURLsCollection, OpInsert, r.ID, r)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	for _, u := range ms.users {
		e, err := newEntry(UsersCollection, OpInsert, u.ID, u)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	for _, f := range ms.files {
		e, err := newEntry(FilesCollection, OpInsert, f.ID, f)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}

	return ms.fs.Rewrite(entries)
}

// Restore inmemory storage from journal entries
func (ms *MapStorage) Restore(entries []Entry) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, e := range entries {
		if err := ms.apply(e); err != nil {
			logger.Log.Info(
				"failed to restore",
				zap.String("collection", e.Collection),
				zap.String("id", e.ID),
				zap.Error(err),
			)
		}
	}
}

// Close compacts and closes the journal
func (ms *MapStorage) Close() error {
	if ms.fs == nil {
		return nil
	}

	if err := ms.Compact(); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.fs.Close()
}

func (ms *MapStorage) apply(e Entry) error {
	switch {
	case e.Collection == ShortURLsCollection && e.Op == OpInsert:
		var r models.ShortURL
		if err := json.Unmarshal(e.Doc, &r); err != nil {
			return err
		}
		r.ID = e.ID
		if _, ok := ms.indexOnOriginalURL[r.OriginalURL]; ok {
			return NewErrNotUnique(ShortURLsCollection, r.OriginalURL)
		}
		ms.insertShortURL(r)
	case e.Collection == UsersCollection && e.Op == OpInsert:
		var u models.User
		if err := json.Unmarshal(e.Doc, &u); err != nil {
			return err
		}
		u.ID = e.ID
		if u.Exercises == nil {
			u.Exercises = make([]models.Exercise, 0)
		}
		if _, ok := ms.indexOnUsername[u.Username]; ok {
			return NewErrNotUnique(UsersCollection, u.Username)
		}
		ms.insertUser(u)
	case e.Collection == UsersCollection && e.Op == OpPush:
		var exercise models.Exercise
		if err := json.Unmarshal(e.Doc, &exercise); err != nil {
			return err
		}
		idx, ok := ms.indexOnUserID[e.ID]
		if !ok {
			return ErrNotFound
		}
		ms.users[idx].Exercises = append(ms.users[idx].Exercises, exercise)
	case e.Collection == FilesCollection && e.Op == OpInsert:
		var f models.FileMetadata
		if err := json.Unmarshal(e.Doc, &f); err != nil {
			return err
		}
		f.ID = e.ID
		ms.files = append(ms.files, f)
		ms.indexOnFileID[f.ID] = len(ms.files) - 1
	default:
		return fmt.Errorf("unknown operation %q on %q", e.Op, e.Collection)
	}

	return nil
}

func (ms *MapStorage) insertShortURL(r models.ShortURL) {
	ms.shortURLs = append(ms.shortURLs, r)
	idx := len(ms.shortURLs) - 1
	ms.indexOnShortURLID[r.ID] = idx
	ms.indexOnOriginalURL[r.OriginalURL] = idx
}

func (ms *MapStorage) insertUser(u models.User) {
	ms.users = append(ms.users, u)
	idx := len(ms.users) - 1
	ms.indexOnUserID[u.ID] = idx
	ms.indexOnUsername[u.Username] = idx
}

func (ms *MapStorage) journal(collection, op, id string, doc any) error {
	if ms.fs == nil {
		return nil
	}

	e, err := newEntry(collection, op, id, doc)
	if err != nil {
		return err
	}

	return ms.fs.Append(e)
}

func newEntry(collection, op, id string, doc any) (Entry, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return Entry{}, fmt.Errorf("could not encode %s document: %w", collection, err)
	}

	return Entry{Collection: collection, Op: op, ID: id, Doc: data}, nil
}

func cloneUser(u models.User) models.User {
	exercises := make([]models.Exercise, len(u.Exercises))
	copy(exercises, u.Exercises)
	u.Exercises = exercises

	return u
}
