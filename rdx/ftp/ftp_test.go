package ftp

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSinkPeelsFilenameFraming(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.bin")

	sink := NewFileSink(out)
	stream := BuildStream("in.bin", []byte("hello world"))

	// Simulate arbitrary chunk boundaries, including one that splits the
	// filename framing itself.
	sink.Write(stream[:4])
	sink.Write(stream[4:])
	if err := sink.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := sink.Err(); err != nil {
		t.Fatalf("sink error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "hello world" {
		t.Fatalf("output = %q, want %q", got, "hello world")
	}
	if sink.SenderName() != "in.bin" {
		t.Fatalf("sender name = %q, want %q", sink.SenderName(), "in.bin")
	}

	want := md5.Sum([]byte("hello world"))
	if sink.MD5() != hex.EncodeToString(want[:]) {
		t.Fatalf("md5 mismatch")
	}
}

func TestFileSinkFallsBackToWireNameWhenOutPathEmpty(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	sink := NewFileSink("")
	stream := BuildStream("received.bin", []byte("payload"))
	sink.Write(stream)
	if err := sink.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := sink.Err(); err != nil {
		t.Fatalf("sink error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "received.bin"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("output = %q, want %q", got, "payload")
	}
}

func TestMD5HexMatchesStdlib(t *testing.T) {
	data := []byte("the quick brown fox")
	sum := md5.Sum(data)
	if MD5Hex(data) != hex.EncodeToString(sum[:]) {
		t.Fatalf("MD5Hex mismatch")
	}
}
