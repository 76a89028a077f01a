// Where: internal/fileops/file_ops_test.go
// What: Tests for shared filesystem helpers.
// Why: Keep write/copy/move semantics stable across scaffold steps.
package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "file.txt")
	if err := WriteFile(path, "hello"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("content = %q, want %q", string(data), "hello")
	}
}

func TestWriteFileIfAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	written, err := WriteFileIfAbsent(path, "first")
	if err != nil || !written {
		t.Fatalf("first write: written=%v err=%v", written, err)
	}

	written, err = WriteFileIfAbsent(path, "second")
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if written {
		t.Fatal("second write must be skipped")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "first" {
		t.Fatalf("content = %q, want %q", string(data), "first")
	}
}

func TestAppendFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := AppendFile(path, "one\n"); err != nil {
		t.Fatalf("AppendFile: %v", err)
	}
	if err := AppendFile(path, "two\n"); err != nil {
		t.Fatalf("AppendFile: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "one\ntwo\n" {
		t.Fatalf("content = %q", string(data))
	}
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")
	if err := WriteFile(filepath.Join(src, "sub", "f.txt"), "data"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir: %v", err)
	}
	if !FileExists(filepath.Join(dst, "sub", "f.txt")) {
		t.Fatal("copied file missing")
	}
}

func TestMoveDir(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "nested", "dst")
	if err := WriteFile(filepath.Join(src, "f.txt"), "data"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := MoveDir(src, dst); err != nil {
		t.Fatalf("MoveDir: %v", err)
	}
	if DirExists(src) {
		t.Fatal("source still present")
	}
	if !FileExists(filepath.Join(dst, "f.txt")) {
		t.Fatal("moved file missing")
	}
}

func TestDirIsEmpty(t *testing.T) {
	dir := t.TempDir()
	empty, err := DirIsEmpty(dir)
	if err != nil || !empty {
		t.Fatalf("empty dir: empty=%v err=%v", empty, err)
	}

	empty, err = DirIsEmpty(filepath.Join(dir, "missing"))
	if err != nil || !empty {
		t.Fatalf("missing dir: empty=%v err=%v", empty, err)
	}

	if err := WriteFile(filepath.Join(dir, "f"), ""); err != nil {
		t.Fatalf("setup: %v", err)
	}
	empty, err = DirIsEmpty(dir)
	if err != nil || empty {
		t.Fatalf("non-empty dir: empty=%v err=%v", empty, err)
	}
}
