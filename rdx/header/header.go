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

// Package header packs and unpacks the 12-byte RDX datagram header.
package header

import (
	"encoding/binary"
	"fmt"
)

// Size is the fixed wire size of a header, in bytes.
const Size = 12

// Flag is a bitmask of header control flags. Unknown bits are preserved on
// decode but never interpreted — callers must mask against the known flags.
type Flag uint16

const (
	FlagSYN Flag = 1 << 0
	FlagACK Flag = 1 << 1
	FlagFIN Flag = 1 << 2
)

// Has reports whether f contains every bit of want.
func (f Flag) Has(want Flag) bool {
	return f&want == want
}

// Header is the fixed RDX transport header: sequence/ack numbers, flags,
// and the receiver's advertised window, all big-endian on the wire.
type Header struct {
	Seq    uint32
	Ack    uint32
	Flags  Flag
	Window uint16
}

// Marshal encodes h into a freshly allocated 12-byte slice.
func (h Header) Marshal() []byte {
	b := make([]byte, Size)
	binary.BigEndian.PutUint32(b[0:4], h.Seq)
	binary.BigEndian.PutUint32(b[4:8], h.Ack)
	binary.BigEndian.PutUint16(b[8:10], uint16(h.Flags))
	binary.BigEndian.PutUint16(b[10:12], h.Window)
	return b
}

// Unmarshal decodes a header from the first Size bytes of b. It returns an
// error if b is shorter than Size; any bytes beyond Size are the payload
// and are left untouched by this function.
func Unmarshal(b []byte) (Header, error) {
	if len(b) < Size {
		return Header{}, fmt.Errorf("header: datagram too short: %d bytes, want at least %d", len(b), Size)
	}
	return Header{
		Seq:    binary.BigEndian.Uint32(b[0:4]),
		Ack:    binary.BigEndian.Uint32(b[4:8]),
		Flags:  Flag(binary.BigEndian.Uint16(b[8:10])),
		Window: binary.BigEndian.Uint16(b[10:12]),
	}, nil
}

// Payload returns the bytes of b following the header. It does not copy.
func Payload(b []byte) []byte {
	if len(b) <= Size {
		return nil
	}
	return b[Size:]
}
