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

package ftp

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"os"
	"path/filepath"

	"github.com/nabbar/rudex/internal/xerr"
)

// BuildStream prepends the "<name>\n" framing the receiver expects to the
// file content, producing the single byte stream handed to sender.New.
func BuildStream(name string, content []byte) []byte {
	out := make([]byte, 0, len(name)+1+len(content))
	out = append(out, []byte(name)...)
	out = append(out, '\n')
	out = append(out, content...)
	return out
}

// ReadSource loads the input file entirely into memory (the CLI contract
// bounds streams at 2^31 bytes) and returns both its bytes and basename.
func ReadSource(path string) (content []byte, name string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", xerr.Wrap(xerr.Fatal, "read input file", err)
	}
	return b, filepath.Base(path), nil
}

// MD5Hex returns the hex-encoded MD5 of data, for the client's own "MD5: "
// announcement of the file it just sent.
func MD5Hex(data []byte) string {
	h := md5.New()
	h.Write(data)
	return hexDigest(h)
}

func hexDigest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
