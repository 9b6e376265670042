package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreCreateReadReplace(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "expenses.json")
	s := New(path)

	ok, err := s.Exists(ctx)
	if err != nil || ok {
		t.Fatalf("expected missing file, got exists=%v err=%v", ok, err)
	}

	if err := s.WriteAll(ctx, nil); err != nil {
		t.Fatalf("create empty: %v", err)
	}
	ok, err = s.Exists(ctx)
	if err != nil || !ok {
		t.Fatalf("expected file to exist, got exists=%v err=%v", ok, err)
	}
	data, err := s.ReadAll(ctx)
	if err != nil || len(data) != 0 {
		t.Fatalf("expected empty file, got %q err=%v", data, err)
	}

	if err := s.WriteAll(ctx, []byte(`{"list":[],"next_id":0}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.WriteAll(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err = s.ReadAll(ctx)
	if err != nil || string(data) != `{}` {
		t.Fatalf("expected whole document replaced, got %q err=%v", data, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != DefaultPerm {
		t.Fatalf("expected mode %v, got %v", DefaultPerm, info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the expense file, found %d entries", len(entries))
	}
}

func TestStoreFailedWriteKeepsDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A directory where the parent should be makes every write fail.
	blocked := New(filepath.Join(path, "child.json"))
	if err := blocked.WriteAll(ctx, []byte("new")); err == nil {
		t.Fatalf("expected write under a regular file to fail")
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "old" {
		t.Fatalf("original document changed: %q err=%v", data, err)
	}
}

func TestStoreExistsRejectsDirectory(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Exists(context.Background()); err == nil {
		t.Fatalf("expected error for directory path")
	}
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(filepath.Join(t.TempDir(), "expenses.json"))
	if err := s.WriteAll(ctx, []byte("x")); err == nil {
		t.Fatalf("expected cancelled context error")
	}
	if ok, _ := s.Exists(context.Background()); ok {
		t.Fatalf("cancelled write created the file")
	}
}
