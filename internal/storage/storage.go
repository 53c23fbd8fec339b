// Package storage provides the snapshot persistence layer. Every collection is
// written whole under a fixed key; backends only move opaque JSON blobs.
package storage

import (
	"context"
	"errors"
)

// Snapshot keys. One key per persisted collection or flag.
const (
	KeyEmployees    = "employees"
	KeyTrucks       = "trucks"
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeySession      = "session"
	KeyFoldLayout   = "fold_layout"
)

// ErrNotFound is returned by Read when no snapshot exists for the key.
var ErrNotFound = errors.New("snapshot not found")

// Backend reads and writes whole-collection snapshots.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}
