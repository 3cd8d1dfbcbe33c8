package perm

import (
	"os"
	"testing"
)

func TestParseOctal(t *testing.T) {
	p, err := Parse("0644")
	if err != nil {
		t.Fatalf("Parse(0644): %v", err)
	}
	if p.FileMode() != os.FileMode(0644) {
		t.Fatalf("FileMode() = %v, want 0644", p.FileMode())
	}
}

func TestParseOctalWithoutLeadingZero(t *testing.T) {
	p, err := Parse("755")
	if err != nil {
		t.Fatalf("Parse(755): %v", err)
	}
	if p.FileMode() != os.FileMode(0755) {
		t.Fatalf("FileMode() = %v, want 0755", p.FileMode())
	}
}

func TestParseQuotedOctal(t *testing.T) {
	p, err := Parse("'0600'")
	if err != nil {
		t.Fatalf("Parse('0600'): %v", err)
	}
	if p.FileMode() != os.FileMode(0600) {
		t.Fatalf("FileMode() = %v, want 0600", p.FileMode())
	}
}

func TestParseSymbolic(t *testing.T) {
	p, err := Parse("rwxr-xr-x")
	if err != nil {
		t.Fatalf("Parse(rwxr-xr-x): %v", err)
	}
	if p.FileMode() != os.FileMode(0755) {
		t.Fatalf("FileMode() = %v, want 0755", p.FileMode())
	}
}

func TestParseSymbolicWithFileTypePrefix(t *testing.T) {
	p, err := Parse("drwxr-xr-x")
	if err != nil {
		t.Fatalf("Parse(drwxr-xr-x): %v", err)
	}
	if p.FileMode()&os.ModeDir == 0 {
		t.Fatalf("FileMode() = %v, want ModeDir set", p.FileMode())
	}
	if p.FileMode().Perm() != os.FileMode(0755) {
		t.Fatalf("FileMode().Perm() = %v, want 0755", p.FileMode().Perm())
	}
}

func TestParseInvalidSymbolicLength(t *testing.T) {
	if _, err := Parse("rwx"); err == nil {
		t.Fatalf("expected an error for a too-short permission group")
	}
}

func TestParseInvalidSymbolicCharacter(t *testing.T) {
	if _, err := Parse("rwxr-xr-Z"); err == nil {
		t.Fatalf("expected an error for an invalid execute character")
	}
}
