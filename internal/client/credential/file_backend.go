package credential

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Backend persists a single token set.
type Backend interface {
	// Read returns nil without error when nothing is stored.
	Read() (*TokenSet, error)
	Write(tokens *TokenSet) error
	Remove() error
}

// FileBackend stores the token set as JSON in a file readable only by the owner.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Read() (*TokenSet, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "read %s", b.path)
	}

	var tokens TokenSet
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, errors.Wrapf(err, "decode %s", b.path)
	}

	return &tokens, nil
}

// Write replaces the file through a temp file and rename, so readers see the old or new set, never a mix.
func (b *FileBackend) Write(tokens *TokenSet) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "encode token set")
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "chmod temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	return errors.Wrapf(os.Rename(tmpName, b.path), "replace %s", b.path)
}

func (b *FileBackend) Remove() error {
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "remove %s", b.path)
	}

	return nil
}
