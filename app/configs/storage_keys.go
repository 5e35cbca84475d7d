package configs

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/gorilla/securecookie"
)

type StorageKeys struct {
	HashKey  []byte
	BlockKey []byte
}

// StorageKeys decodes the sealing keys. It returns nil when no hash key is set,
// meaning values are stored as plain JSON.
func (e ENV) StorageKeys() (*StorageKeys, error) {
	if e.StorageHashKey == "" {
		if e.StorageBlockKey != "" {
			return nil, fmt.Errorf("STORAGE_BLOCK_KEY requires STORAGE_HASH_KEY")
		}
		return nil, nil
	}

	hashKey, err := base64.URLEncoding.DecodeString(e.StorageHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode STORAGE_HASH_KEY from Base64: %w", err)
	}
	if len(hashKey) < 32 {
		return nil, fmt.Errorf("STORAGE_HASH_KEY must decode to at least 32 bytes, got %d", len(hashKey))
	}

	keys := &StorageKeys{HashKey: hashKey}
	if e.StorageBlockKey == "" {
		return keys, nil
	}

	blockKey, err := base64.URLEncoding.DecodeString(e.StorageBlockKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode STORAGE_BLOCK_KEY from Base64: %w", err)
	}
	if len(blockKey) != 16 && len(blockKey) != 24 && len(blockKey) != 32 {
		return nil, fmt.Errorf("STORAGE_BLOCK_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(blockKey))
	}
	keys.BlockKey = blockKey
	return keys, nil
}

func GenerateStorageKeys() (StorageKeys, error) {
	hashKey := securecookie.GenerateRandomKey(64)
	if hashKey == nil {
		return StorageKeys{}, fmt.Errorf("error: could not generate hash key")
	}
	blockKey := securecookie.GenerateRandomKey(32)
	if blockKey == nil {
		return StorageKeys{}, fmt.Errorf("error: could not generate block key")
	}
	return StorageKeys{HashKey: hashKey, BlockKey: blockKey}, nil
}

// WriteStorageKeys prints keys as .env lines and, when path is not empty, also
// writes them to that file.
func WriteStorageKeys(w io.Writer, keys StorageKeys, path string) error {
	lines := fmt.Sprintf("STORAGE_HASH_KEY=%s\nSTORAGE_BLOCK_KEY=%s\n",
		base64.URLEncoding.EncodeToString(keys.HashKey),
		base64.URLEncoding.EncodeToString(keys.BlockKey),
	)
	if _, err := io.WriteString(w, lines); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", path, err)
	}
	return nil
}
