/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package rlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EventLog is the wire-protocol event log, gated by RUDP_LOG=1. It is
// intentionally independent of the structured operational Logger: tests
// assert on its exact textual format, one event per line.
type EventLog struct {
	mu      sync.Mutex
	w       io.WriteCloser
	enabled bool
}

// OpenEventLog opens the per-role event log (server_log.txt / client_log.txt)
// when RUDP_LOG=1 is set in the environment, and is a no-op sink otherwise.
func OpenEventLog(role string) (*EventLog, error) {
	if os.Getenv("RUDP_LOG") != "1" {
		return &EventLog{enabled: false}, nil
	}

	name := "client_log.txt"
	if role == "server" {
		name = "server_log.txt"
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}

	return &EventLog{w: f, enabled: true}, nil
}

// Logf appends one formatted event line, prefixed with the
// "[YYYY-MM-DD HH:MM:SS.uuuuuu] [LOG] " timestamp header.
func (e *EventLog) Logf(format string, args ...any) {
	if e == nil || !e.enabled {
		return
	}

	now := time.Now()
	line := fmt.Sprintf("[%s.%06d] [LOG] %s\n",
		now.Format("2006-01-02 15:04:05"), now.Nanosecond()/1000,
		fmt.Sprintf(format, args...))

	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = io.WriteString(e.w, line)
}

// Close releases the underlying file, if any was opened.
func (e *EventLog) Close() error {
	if e == nil || !e.enabled {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.w.Close()
}
