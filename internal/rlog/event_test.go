package rlog

import (
	"os"
	"strings"
	"testing"
)

func TestEventLogDisabledByDefault(t *testing.T) {
	os.Unsetenv("RUDP_LOG")
	ev, err := OpenEventLog("client")
	if err != nil {
		t.Fatalf("OpenEventLog: %v", err)
	}
	defer ev.Close()

	if ev.enabled {
		t.Fatalf("expected event log disabled without RUDP_LOG=1")
	}
	ev.Logf("SND SYN")
}

func TestEventLogFormat(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	os.Setenv("RUDP_LOG", "1")
	defer os.Unsetenv("RUDP_LOG")

	ev, err := OpenEventLog("server")
	if err != nil {
		t.Fatalf("OpenEventLog: %v", err)
	}
	ev.Logf("RCV SYN seq=%d", 42)
	if err := ev.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile("server_log.txt")
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimRight(string(data), "\n")

	if !strings.HasPrefix(line, "[") || !strings.Contains(line, "] [LOG] RCV SYN seq=42") {
		t.Fatalf("unexpected log line: %q", line)
	}
}
