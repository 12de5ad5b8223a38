package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Configuration for Argon2id hashing.
const (
	memory      = 64 * 1024 // Memory usage in KiB (64 MiB)
	iterations  = 1         // Iteration count
	parallelism = 4         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath configures where the pepper lives on disk. Call this once at
// startup before any password is hashed or verified.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
}

// GetPepper returns the process-wide pepper, loading or generating it on
// first use. Losing the pepper file invalidates every stored digest, which
// is why it is persisted rather than held only in memory.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	loaded, err := loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = loaded

	return pepper
}

func loadOrGeneratePepper() (string, error) {
	file := filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		fresh := base64.RawURLEncoding.EncodeToString(raw)

		if err := os.WriteFile(file, []byte(fresh), 0600); err != nil {
			return "", err
		}
		return fresh, nil
	}

	existing, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(existing), nil
}
