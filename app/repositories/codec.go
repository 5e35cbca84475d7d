package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
)

// ErrMalformed marks stored bytes that could not be decoded.
var ErrMalformed = errors.New("malformed stored value")

// Codec turns values into the bytes kept under a storage key.
type Codec interface {
	Marshal(key string, v any) ([]byte, error)
	Unmarshal(key string, data []byte, v any) error
}

type JSONCodec struct{}

func (JSONCodec) Marshal(key string, v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return nil
}

// SecureCodec signs (and, with a block key, encrypts) values so a tampered
// snapshot is rejected instead of loaded. The storage key is bound into the MAC.
type SecureCodec struct {
	sc *securecookie.SecureCookie
}

func NewSecureCodec(hashKey, blockKey []byte) *SecureCodec {
	sc := securecookie.New(hashKey, blockKey).
		SetSerializer(securecookie.JSONEncoder{}).
		MaxAge(0).
		MaxLength(0)
	return &SecureCodec{sc: sc}
}

func (c *SecureCodec) Marshal(key string, v any) ([]byte, error) {
	encoded, err := c.sc.Encode(key, v)
	if err != nil {
		return nil, fmt.Errorf("failed to seal %s: %w", key, err)
	}
	return []byte(encoded), nil
}

func (c *SecureCodec) Unmarshal(key string, data []byte, v any) error {
	if err := c.sc.Decode(key, string(data), v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return nil
}
