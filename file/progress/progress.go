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

package progress

import (
	"os"
	"sync/atomic"
)

// Progress is a write-tracked, closable file. Its surface is deliberately
// narrow: only what a streamed file-transfer sink needs.
type Progress interface {
	Write(p []byte) (int, error)
	Close() error

	// Written reports the cumulative byte count passed to Write so far.
	Written() int64
}

type progress struct {
	fos     *os.File
	written atomic.Int64
}

// New opens name with the given flags and permission, wrapping the result
// for write-progress tracking.
func New(name string, flags int, perm os.FileMode) (Progress, error) {
	f, err := os.OpenFile(name, flags, perm)
	if err != nil {
		return nil, err
	}
	return &progress{fos: f}, nil
}

func (p *progress) Write(b []byte) (int, error) {
	n, err := p.fos.Write(b)
	p.written.Add(int64(n))
	return n, err
}

func (p *progress) Close() error {
	return p.fos.Close()
}

func (p *progress) Written() int64 {
	return p.written.Load()
}
