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

// Package receiver reassembles a possibly reordered, duplicated stream of
// RDX data segments into an in-order byte stream, and computes the
// cumulative ACK/advertised-window pair to send back.
package receiver

import "sort"

// RecvCap is the nominal receive buffer capacity advertised in the flow
// control window. The file-mode consumer writes straight to disk and never
// actually bounds on this value, so recv_cap - recv_bytes stays close to
// RecvCap for the lifetime of a transfer (see SPEC_FULL.md §9, zero-window probe).
const RecvCap = 1 << 20

type oooNode struct {
	seq  uint32
	data []byte
}

// Reassembler delivers bytes to Deliver strictly in order and tracks the
// cumulative ACK state. It is agnostic of any application-level framing
// (such as a leading filename) — that is the caller's concern.
type Reassembler struct {
	expected  uint32
	delivered uint32
	ooo       []oooNode

	// Deliver receives in-order bytes as they become ready. It must not
	// retain the slice beyond the call.
	Deliver func([]byte)
}

// New builds a Reassembler expecting the stream to start at isn, calling
// deliver for every in-order chunk of bytes as it becomes available.
func New(isn uint32, deliver func([]byte)) *Reassembler {
	return &Reassembler{expected: isn, Deliver: deliver}
}

// Accept processes one arriving data segment and returns the ACK to send:
// the new cumulative ack number and the advertised window.
func (r *Reassembler) Accept(seq uint32, data []byte) (ack uint32, win uint16) {
	switch {
	case seq == r.expected:
		r.deliver(data)
		r.expected += uint32(len(data))
		r.drainOOO()
	case seqGT(seq, r.expected):
		r.insertOOO(seq, data)
	default:
		// seq < expected: duplicate already-delivered data, discard.
	}

	return r.expected, r.window()
}

func (r *Reassembler) deliver(data []byte) {
	if len(data) == 0 {
		return
	}
	r.delivered += uint32(len(data))
	if r.Deliver != nil {
		r.Deliver(data)
	}
}

func (r *Reassembler) insertOOO(seq uint32, data []byte) {
	i := sort.Search(len(r.ooo), func(i int) bool { return !seqLT(r.ooo[i].seq, seq) })
	if i < len(r.ooo) && r.ooo[i].seq == seq {
		return // duplicate out-of-order packet
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	r.ooo = append(r.ooo, oooNode{})
	copy(r.ooo[i+1:], r.ooo[i:])
	r.ooo[i] = oooNode{seq: seq, data: cp}
}

func (r *Reassembler) drainOOO() {
	for len(r.ooo) > 0 && r.ooo[0].seq == r.expected {
		head := r.ooo[0]
		r.ooo = r.ooo[1:]
		r.deliver(head.data)
		r.expected += uint32(len(head.data))
	}
}

func (r *Reassembler) window() uint16 {
	remaining := int64(RecvCap) - int64(r.delivered)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > 65535 {
		remaining = 65535
	}
	return uint16(remaining)
}

// Expected returns the next sequence number the reassembler has not yet
// delivered, i.e. the current cumulative ACK value.
func (r *Reassembler) Expected() uint32 {
	return r.expected
}

func seqLT(a, b uint32) bool { return int32(a-b) < 0 }
func seqGT(a, b uint32) bool { return int32(a-b) > 0 }
