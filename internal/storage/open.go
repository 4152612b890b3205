package storage

import (
	"context"
	"fmt"
)

const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
)

// Open returns the client state store selected by backend.
func Open(ctx context.Context, backend, sqlitePath, diskvPath string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		repo, err := NewRepository(sqlitePath)
		if err != nil {
			return nil, err
		}
		if err := repo.Init(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		if err := repo.CheckWritable(ctx); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("storage write check failed for %s: %w", sqlitePath, err)
		}
		return repo, nil
	case BackendDiskv:
		return NewDiskvStore(diskvPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
