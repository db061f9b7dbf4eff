package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	ref   string
	err   error
	calls int
	body  string
}

func (s *stubStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	s.calls++
	data, _ := io.ReadAll(body)
	s.body = string(data)
	if s.err != nil {
		return "", s.err
	}
	return s.ref, nil
}

func TestLocalStore_Upload(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	ref, err := store.Upload(context.Background(), "shot.png", "image/png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/shot.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "shot.png"))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestLocalStore_Upload_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	ref, err := store.Upload(context.Background(), "../../etc/shot.png", "image/png", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/shot.png", ref)

	_, err = os.Stat(filepath.Join(dir, "shot.png"))
	assert.NoError(t, err)
}

func TestFallbackStore_PrefersPrimary(t *testing.T) {
	primary := &stubStore{ref: "remote/shot.png"}
	fallback := &stubStore{ref: "local/shot.png"}
	store := NewFallbackStore(primary, fallback)

	ref, err := store.Upload(context.Background(), "shot.png", "image/png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "remote/shot.png", ref)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestFallbackStore_FallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubStore{err: errors.New("credentials not available")}
	fallback := &stubStore{ref: "local/shot.png"}
	store := NewFallbackStore(primary, fallback)

	ref, err := store.Upload(context.Background(), "shot.png", "image/png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "local/shot.png", ref)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	// The fallback sees the full body even though the primary consumed it.
	assert.Equal(t, "png-bytes", fallback.body)
}
