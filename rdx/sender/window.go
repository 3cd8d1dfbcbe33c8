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

// Package sender implements the RDX sliding-window segment sender: splitting
// a byte stream into fixed-size segments, keeping at most WinPkts segments
// in flight, and retransmitting on a fixed per-segment timeout.
package sender

import "time"

const (
	// WinPkts is the fixed sender window size, in segments.
	WinPkts = 10
	// RTO is the fixed per-segment retransmission timeout.
	RTO = 500 * time.Millisecond
	// DataLen is the maximum payload length of a single segment.
	DataLen = 1024
)

// Segment is one fixed-size slice of the outbound byte stream.
type Segment struct {
	Seq      uint32
	Data     []byte
	InFlight bool
	SentAt   time.Time
}

// End returns the sequence number one past the last byte of the segment.
func (s *Segment) End() uint32 {
	return s.Seq + uint32(len(s.Data))
}

// Event describes one action the caller must take: send (first transmission
// or retransmission) of a segment on the wire.
type Event struct {
	Segment    *Segment
	Retransmit bool
}

// Window tracks the sliding window over a full byte stream split into
// DataLen-sized segments (the last one may be short).
type Window struct {
	segments      []*Segment
	base          int
	next          int
	lastByteAcked uint32
	lastByteSent  uint32
	peerWindow    uint32
}

// New splits data into segments of DataLen bytes each, starting at isn, and
// returns a Window ready to drive the send loop. A zero-length data stream
// yields a Window with no segments (only the FIN carries no payload and is
// not modeled here).
func New(data []byte, isn uint32) *Window {
	w := &Window{peerWindow: DataLen * WinPkts, lastByteAcked: isn, lastByteSent: isn}
	seq := isn
	for off := 0; off < len(data); off += DataLen {
		end := off + DataLen
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		w.segments = append(w.segments, &Segment{Seq: seq, Data: chunk})
		seq += uint32(len(chunk))
	}
	return w
}

// Done reports whether every segment has been acknowledged.
func (w *Window) Done() bool {
	return w.base >= len(w.segments)
}

// Tick advances the window's internal clock: it retransmits any in-flight
// segment whose RTO has elapsed, then admits new segments into flight up to
// WinPkts in flight and the peer's advertised window. Returns the ordered
// list of segments that must be sent on the wire this tick.
func (w *Window) Tick(now time.Time) []Event {
	var out []Event

	for i := w.base; i < w.next && i < len(w.segments); i++ {
		s := w.segments[i]
		if s.InFlight && now.Sub(s.SentAt) >= RTO {
			s.SentAt = now
			out = append(out, Event{Segment: s, Retransmit: true})
		}
	}

	for w.next < len(w.segments) && w.next < w.base+WinPkts {
		s := w.segments[w.next]
		if s.InFlight {
			w.next++
			continue
		}
		if w.lastByteSent+uint32(len(s.Data))-w.lastByteAcked > w.peerWindow {
			break
		}
		s.InFlight = true
		s.SentAt = now
		w.lastByteSent += uint32(len(s.Data))
		w.next++
		out = append(out, Event{Segment: s})
	}

	return out
}

// OnAck applies a cumulative ACK: advances base past every fully-acked
// segment and records the peer's advertised window. A stale ACK (ack not
// advancing base) moves neither base nor lastByteAcked, matching
// cumulative-ACK semantics, but its advertised window is still recorded.
func (w *Window) OnAck(ack uint32, peerWin uint16) {
	w.peerWindow = uint32(peerWin)

	for w.base < len(w.segments) && seqLTE(w.segments[w.base].End(), ack) {
		w.base++
	}

	if seqGT(ack, w.lastByteAcked) {
		w.lastByteAcked = ack
	}
}

// seqLTE and seqGT compare sequence numbers with 32-bit wraparound, in case
// a stream crosses the uint32 boundary.
func seqLTE(a, b uint32) bool { return int32(a-b) <= 0 }
func seqGT(a, b uint32) bool  { return int32(a-b) > 0 }
