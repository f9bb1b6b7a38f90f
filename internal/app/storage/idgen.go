package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	idBytes       = 8
	idGenAttempts = 10
)

// RandHexStringGenerator
type RandHexStringGenerator interface {
	Call(n int) (string, error)
}

// StdRandHexStringGenerator
type StdRandHexStringGenerator struct{}

// Call returns hex encoded n random bytes
func (randGen StdRandHexStringGenerator) Call(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}

func generateID(randGen RandHexStringGenerator, taken func(string) bool) (string, error) {
	for i := 0; i < idGenAttempts; i++ {
		id, err := randGen.Call(idBytes)
		if err != nil {
			return "", fmt.Errorf("failed to generate id: %w", err)
		}
		if !taken(id) {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique id in %d attempts", idGenAttempts)
}
