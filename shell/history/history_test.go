package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddDeduplicatesAgainstTail(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Add("ls -l"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add("ls -l"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 entry after dedup, got %d", s.Len())
	}
	if err := s.Add("pwd"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", s.Len())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	for i := 0; i < Capacity+5; i++ {
		if err := s.Add(string(rune('a' + i))); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if s.Len() != Capacity {
		t.Fatalf("want %d entries, got %d", Capacity, s.Len())
	}
	newest, ok := s.At(1)
	if !ok || newest != string(rune('a'+Capacity+4)) {
		t.Fatalf("newest entry = %q", newest)
	}
}

func TestEntriesNewestFirst(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	s.Add("one")
	s.Add("two")
	s.Add("three")
	got := s.Entries()
	want := []string{"three", "two", "one"}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Entries()[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestPurgeClearsAndPersists(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	s.Add("one")
	if err := s.Purge(); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("want 0 entries after purge")
	}
	b, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("want empty file after purge, got %q", b)
	}
}

func TestOpenReadsExistingFileRespectingCapacity(t *testing.T) {
	dir := t.TempDir()
	var content string
	for i := 0; i < Capacity+3; i++ {
		content += string(rune('a'+i%26)) + "\n"
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != Capacity {
		t.Fatalf("want %d entries loaded, got %d", Capacity, s.Len())
	}
}

func TestAtOutOfRange(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	s.Add("only")
	if _, ok := s.At(0); ok {
		t.Fatalf("At(0) should not exist")
	}
	if _, ok := s.At(2); ok {
		t.Fatalf("At(2) should not exist with one entry")
	}
}
