package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// BlobStore stores an uploaded artifact and returns an opaque reference
// (URL or path) for later display. The report side never interprets the
// reference, it only carries it.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// LocalStore writes blobs under a directory on local disk.
type LocalStore struct {
	dir      string
	basePath string
}

// NewLocalStore creates a store rooted at dir; references are basePath/key.
func NewLocalStore(dir, basePath string) *LocalStore {
	return &LocalStore{dir: dir, basePath: basePath}
}

// Upload writes the blob to disk and returns its serving path.
func (s *LocalStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// Keys are generated server-side, but never trust them as paths.
	name := filepath.Base(key)
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(s.basePath, name), nil
}

// FallbackStore tries a primary store and falls back to a secondary one when
// the primary fails (remote object store with local-disk fallback).
type FallbackStore struct {
	primary  BlobStore
	fallback BlobStore
}

// NewFallbackStore creates a store that prefers primary.
func NewFallbackStore(primary, fallback BlobStore) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback}
}

// Upload stores via the primary, or via the fallback if the primary errors.
// The body is buffered so it can be replayed for the fallback attempt.
func (s *FallbackStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read upload body: %w", err)
	}
	if ref, err := s.primary.Upload(ctx, key, contentType, bytes.NewReader(data)); err == nil {
		return ref, nil
	}
	return s.fallback.Upload(ctx, key, contentType, bytes.NewReader(data))
}
