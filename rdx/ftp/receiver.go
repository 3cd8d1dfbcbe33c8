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

// Package ftp implements the file-transfer framing layered on top of a
// filename-agnostic receiver.Reassembler: the first delivered bytes are an
// ASCII filename terminated by '\n', after which everything is file
// content. It opens the destination file with progress-tracked I/O and
// reports the MD5 of what was received once the transfer completes.
package ftp

import (
	"bytes"
	"crypto/md5"
	"hash"
	"os"

	"github.com/nabbar/rudex/file/perm"
	"github.com/nabbar/rudex/file/progress"
	"github.com/nabbar/rudex/internal/xerr"
)

// DefaultOutputPerm is the mode new output files are created with.
const DefaultOutputPerm = "0644"

// FileSink consumes the reassembled byte stream, peeling off the leading
// "<name>\n" framing before the first write and streaming the remainder to
// a progress-tracked file created at the caller-supplied path. A non-empty
// path overrides the name embedded on the wire; an empty path (server mode)
// makes the sink create the file under the name the sender sent.
type FileSink struct {
	outPath string
	out     progress.Progress
	nameBuf bytes.Buffer
	named   bool
	digest  hash.Hash
	written int64
	err     error
}

// NewFileSink prepares a sink that will create outPath on first write.
func NewFileSink(outPath string) *FileSink {
	return &FileSink{outPath: outPath, digest: md5.New()}
}

// Write implements the receiver.Reassembler Deliver callback.
func (f *FileSink) Write(b []byte) {
	if err := f.write(b); err != nil {
		// The reassembler's Deliver callback has no error return; a disk
		// failure here is Fatal and the caller must notice via Err() after
		// the transfer loop exits.
		f.err = err
	}
}

func (f *FileSink) write(b []byte) error {
	if f.err != nil {
		return f.err
	}

	if !f.named {
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			f.nameBuf.Write(b[:i])
			b = b[i+1:]
			f.named = true
			if err := f.open(); err != nil {
				return err
			}
		} else {
			f.nameBuf.Write(b)
			return nil
		}
	}

	if len(b) == 0 {
		return nil
	}

	if _, err := f.out.Write(b); err != nil {
		return xerr.Wrap(xerr.Fatal, "write output file", err)
	}
	f.digest.Write(b)
	f.written += int64(len(b))
	return nil
}

func (f *FileSink) open() error {
	if f.outPath == "" {
		// No explicit destination was given (server mode has no filename
		// argument): fall back to the name the sender embedded on the wire,
		// per the first-packet contract.
		f.outPath = f.nameBuf.String()
	}

	p, err := perm.Parse(DefaultOutputPerm)
	if err != nil {
		return xerr.Wrap(xerr.Fatal, "parse output permission", err)
	}

	out, err := progress.New(f.outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, p.FileMode())
	if err != nil {
		return xerr.Wrap(xerr.Fatal, "create output file", err)
	}
	f.out = out
	return nil
}

// SenderName returns the filename the sender embedded on the wire, which
// names the output file only when the sink was given an empty path.
func (f *FileSink) SenderName() string {
	return f.nameBuf.String()
}

// MD5 returns the hex-encoded MD5 of everything written so far.
func (f *FileSink) MD5() string {
	return hexDigest(f.digest)
}

// Bytes returns the number of content bytes written (excluding the leading
// filename framing).
func (f *FileSink) Bytes() int64 {
	return f.written
}

// Close flushes and closes the output file, if one was opened.
func (f *FileSink) Close() error {
	if f.out == nil {
		return nil
	}
	return f.out.Close()
}

// err is set by write on the first fatal I/O failure and surfaces via Err.
func (f *FileSink) Err() error {
	return f.err
}
