package storage

import (
	"path/filepath"
	"testing"
)

func TestNewStoreKinds(t *testing.T) {
	store, err := NewStore("", "")
	if err != nil {
		t.Fatalf("default store: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	store, err = NewStore("file", filepath.Join(t.TempDir(), "life.json"))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("expected file store, got %T", store)
	}
	if err := CloseIfSupported(store); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := NewStore("redis", ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
