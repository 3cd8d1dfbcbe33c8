package progress

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesFileAndWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dat")
	p, err := New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n, err := p.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 5 {
		t.Fatalf("Write returned n = %d, want 5", n)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("file contents = %q, want %q", got, "hello")
	}
}

func TestWrittenTracksCumulativeBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dat")
	p, err := New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	if _, err := p.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := p.Write([]byte("de")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := p.Written(); got != 5 {
		t.Fatalf("Written() = %d, want 5", got)
	}
}

func TestNewFailsOnUnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist", "out.dat")
	if _, err := New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644); err == nil {
		t.Fatalf("expected New to fail for a missing parent directory")
	}
}
