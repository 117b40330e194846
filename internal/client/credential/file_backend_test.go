package credential

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	backend := NewFileBackend(path)

	missing, err := backend.Read()
	require.NoError(t, err)
	assert.Nil(t, missing)

	want := &TokenSet{
		AccessToken:  "access",
		RefreshToken: "refresh",
		IDToken:      "id",
		ExpiresAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, backend.Write(want))

	got, err := backend.Read()
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.Equal(t, want.IDToken, got.IDToken)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileBackend_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	backend := NewFileBackend(path)

	require.NoError(t, backend.Remove(), "removing a missing file is not an error")
	require.NoError(t, backend.Write(&TokenSet{AccessToken: "a", ExpiresAt: time.Now()}))
	require.NoError(t, backend.Remove())

	got, err := backend.Read()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileBackend(path).Read()

	assert.Error(t, err)
}
