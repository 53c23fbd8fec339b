package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()

	payload := []byte(`[{"id":1}]`)
	if err := backend.Write(ctx, KeyTrucks, payload); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := backend.Read(ctx, KeyTrucks)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Read = %s, want %s", got, payload)
	}
}

func TestFileBackendMissingKey(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	_, err = backend.Read(context.Background(), KeyAccounts)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Read missing key error = %v, want ErrNotFound", err)
	}
}

func TestFileBackendOverwrite(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()

	if err := backend.Write(ctx, KeySession, []byte("true")); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := backend.Write(ctx, KeySession, []byte("false")); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := backend.Read(ctx, KeySession)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "false" {
		t.Errorf("Read = %s, want false", got)
	}

	// No temp files left behind after the rename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	if _, err := backend.Read(ctx, KeyEmployees); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read before Write error = %v, want ErrNotFound", err)
	}

	payload := []byte(`[]`)
	if err := backend.Write(ctx, KeyEmployees, payload); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := backend.Read(ctx, KeyEmployees)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// Mutating the returned slice must not touch the stored copy.
	got[0] = 'X'
	again, err := backend.Read(ctx, KeyEmployees)
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if string(again) != "[]" {
		t.Errorf("stored snapshot mutated: %s", again)
	}
}
