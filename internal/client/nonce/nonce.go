// Package nonce binds a federated sign-in attempt to a single request.
package nonce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// rawSize is the entropy drawn per nonce, in bytes.
const rawSize = 32

// ErrEntropySourceUnavailable means the secure random source could not be read.
// The attempt that asked for the nonce must be abandoned.
var ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

// Nonce is a single-use value. Only Hash is sent to the authority.
type Nonce struct {
	Raw  string
	Hash string
}

// Generator draws nonces from a secure random source.
type Generator struct {
	source io.Reader
}

// NewGenerator returns a Generator reading from source, or crypto/rand when source is nil.
func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}

	return &Generator{source: source}
}

// Generate returns a fresh nonce and its hash.
func (g *Generator) Generate() (Nonce, error) {
	buf := make([]byte, rawSize)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return Nonce{}, errors.Wrapf(ErrEntropySourceUnavailable, "read %d bytes: %v", rawSize, err)
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return Nonce{Raw: raw, Hash: Hash(raw)}, nil
}

// Hash is the lowercase hex SHA-256 of raw.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
