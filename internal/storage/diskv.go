package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps client state as one file per key under a base directory.
type DiskvStore struct {
	d *diskv.Diskv
}

func NewDiskvStore(basePath string) (*DiskvStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("diskv base path is required")
	}
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
		PathPerm:     0o700,
		FilePerm:     0o600,
	})}, nil
}

func (s *DiskvStore) Get(_ context.Context, key string) (string, error) {
	if !s.d.Has(key) {
		return "", ErrNotFound
	}
	value, err := s.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("read client state %q: %w", key, err)
	}
	return string(value), nil
}

func (s *DiskvStore) Set(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key is required")
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("save client state %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("delete client state %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}
