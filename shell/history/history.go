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

// Package history is the shell's persistent command log: a deque of at most
// Capacity entries, deduplicated against the immediately preceding entry,
// backed one line per entry by a file at $HOME/logs.txt.
package history

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// Capacity is the maximum number of retained entries; the oldest entry is
// evicted once a new one would exceed it.
const Capacity = 15

// FileName is the basename persisted under the shell's start directory.
const FileName = "logs.txt"

// Store is the in-memory deque, oldest entry at index 0, newest at the end.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []string
}

// Open loads up to Capacity lines from dir/logs.txt, oldest to newest,
// evicting from the front if the file holds more. A missing file yields an
// empty, ready-to-use Store.
func Open(dir string) (*Store, error) {
	s := &Store{path: dir + string(os.PathSeparator) + FileName}
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		s.entries = append(s.entries, line)
		if len(s.entries) > Capacity {
			s.entries = s.entries[1:]
		}
	}
	return s, sc.Err()
}

// Add appends cmd unless it equals the current tail entry, evicting the
// oldest entry if the deque is already at Capacity, then persists.
func (s *Store) Add(cmd string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.entries); n > 0 && s.entries[n-1] == cmd {
		return nil
	}
	s.entries = append(s.entries, cmd)
	if len(s.entries) > Capacity {
		s.entries = s.entries[1:]
	}
	return s.persist()
}

// Purge clears every entry and persists the now-empty log.
func (s *Store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return s.persist()
}

// Entries returns entries newest-first, oldest-last: index 0 is the most
// recent entry, the one "log execute 1" selects.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// At returns the k-th most recent entry (1 = most recent) for "log execute
// k", and whether that index exists.
func (s *Store) At(k int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k < 1 || k > len(s.entries) {
		return "", false
	}
	return s.entries[len(s.entries)-k], true
}

// Len reports how many entries are currently retained.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) persist() error {
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0644)
}
