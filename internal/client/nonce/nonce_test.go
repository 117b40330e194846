package nonce

import (
	"bytes"
	"encoding/base64"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(nil)

	n, err := g.Generate()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(n.Raw)
	require.NoError(t, err)
	assert.Len(t, decoded, rawSize)
	assert.Len(t, n.Hash, 64)
	assert.Equal(t, Hash(n.Raw), n.Hash)
	assert.NotEqual(t, n.Raw, n.Hash)
}

func TestGenerator_NoCollisions(t *testing.T) {
	g := NewGenerator(nil)
	seen := make(map[string]struct{}, 10000)

	for range 10000 {
		n, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[n.Raw]
		require.False(t, dup, "duplicate nonce %s", n.Raw)
		seen[n.Raw] = struct{}{}
	}
}

func TestGenerator_EntropyFailure(t *testing.T) {
	tests := map[string]*Generator{
		"reader error": NewGenerator(iotest.ErrReader(errors.New("device gone"))),
		"short read":   NewGenerator(bytes.NewReader(make([]byte, rawSize-1))),
	}

	for name, g := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := g.Generate()

			assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
			assert.Empty(t, n.Raw)
		})
	}
}

func TestHash_KnownVector(t *testing.T) {
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash("abc"))
}
