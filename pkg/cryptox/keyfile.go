package cryptox

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MinSecretSize is the smallest decoded secret accepted for HMAC signing.
const MinSecretSize = 32

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath sets where the password pepper lives. It must be called before
// the first hash is computed; the pepper is cached afterwards.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
}

// GetPepper returns the process-wide password pepper, creating the pepper
// file on first use. A pepper that cannot be read is fatal: hashes computed
// without it would never verify again.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	value, err := LoadOrCreateKeyFile(pepperFile, keyLength)
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = value
	return pepper
}

// LoadOrCreateKeyFile returns the base64url key stored at path. When the file
// does not exist a new random key of size bytes is generated and written with
// 0600 permissions.
func LoadOrCreateKeyFile(path string, size int) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("cryptox: key file %s is empty", path)
		}
		return key, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	key, err := GenerateToken(size)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(key), 0o600); err != nil {
		return "", err
	}
	return key, nil
}

// LoadOrCreateSecret loads the HMAC signing secret from path (creating it if
// missing) and returns the decoded bytes.
func LoadOrCreateSecret(path string) ([]byte, error) {
	encoded, err := LoadOrCreateKeyFile(path, MinSecretSize)
	if err != nil {
		return nil, err
	}

	secret, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		// Operators may drop in a raw passphrase instead of a generated key.
		secret = []byte(encoded)
	}
	if len(secret) < MinSecretSize {
		return nil, fmt.Errorf("cryptox: secret in %s is shorter than %d bytes", path, MinSecretSize)
	}
	return secret, nil
}
