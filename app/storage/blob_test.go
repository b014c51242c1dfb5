package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorePutAndURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	key := NewKey("evidence.jpg")
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("key %q lost its extension", key)
	}

	if err := store.Put(key, strings.NewReader("photo-bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		t.Fatalf("reading stored blob: %v", err)
	}
	if string(data) != "photo-bytes" {
		t.Fatalf("stored %q, want photo-bytes", data)
	}

	if got := store.PublicURL(key); got != "/uploads/"+key {
		t.Fatalf("PublicURL = %q, want /uploads/%s", got, key)
	}
}

func TestDiskStoreRejectsTraversalKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Put(key, strings.NewReader("x")); err == nil {
			t.Fatalf("key %q accepted, want error", key)
		}
	}
}

func TestNewKeyUnique(t *testing.T) {
	if NewKey("a.png") == NewKey("a.png") {
		t.Fatal("NewKey returned a duplicate")
	}
}
