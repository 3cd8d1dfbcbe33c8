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

package conn

import (
	"time"

	"github.com/nabbar/rudex/rdx/header"
	"github.com/nabbar/rudex/rdx/receiver"
	"github.com/nabbar/rudex/rdx/sender"
)

// SendFile drives the sliding-window sender loop to completion for stream
// (already framed with the "<name>\n" prefix by rdx/ftp.BuildStream), then
// runs the initiating side of the 4-way teardown.
func (c *Conn) SendFile(stream []byte) error {
	win := sender.New(stream, c.localISN)

	for !win.Done() {
		now := time.Now()
		for _, ev := range win.Tick(now) {
			h := header.Header{Seq: ev.Segment.Seq, Ack: c.peerISN, Window: windowAdvert}
			if err := c.sock.Send(h, ev.Segment.Data); err != nil {
				return err
			}
			if ev.Retransmit {
				c.ev.Logf("TIMEOUT SEQ=%d", ev.Segment.Seq)
				c.ev.Logf("RETX DATA SEQ=%d LEN=%d", ev.Segment.Seq, len(ev.Segment.Data))
			} else {
				c.ev.Logf("SND DATA SEQ=%d LEN=%d", ev.Segment.Seq, len(ev.Segment.Data))
			}
		}

		h, _, _, ok, err := c.sock.Recv(sender.RTO / 2)
		if err != nil {
			return err
		}
		if ok && h.Flags.Has(header.FlagACK) {
			c.ev.Logf("RCV ACK=%d", h.Ack)
			win.OnAck(h.Ack, h.Window)
			c.ev.Logf("FLOW WIN UPDATE=%d", h.Window)
		}
	}

	lastByte := c.localISN + uint32(len(stream)) - 1
	return c.InitiateTeardown(lastByte)
}

// RecvFile drives the receiver reassembler until the peer's FIN arrives,
// delivering bytes to deliver as they arrive in order, then responds to the
// peer's teardown.
func (c *Conn) RecvFile(deliver func([]byte)) error {
	reasm := receiver.New(c.peerISN, deliver)

	for {
		h, payload, from, ok, err := c.sock.Recv(5 * time.Second)
		if err != nil {
			return err
		}
		if !ok {
			if from != nil {
				c.ev.Logf("DROP DATA SEQ=%d", h.Seq)
			}
			continue
		}

		if h.Flags.Has(header.FlagFIN) {
			c.ev.Logf("RCV FIN SEQ=%d", h.Seq)
			lastByte := reasm.Expected() - 1
			return c.RespondToPeerFIN(h.Seq, lastByte)
		}

		if len(payload) == 0 {
			continue
		}

		c.ev.Logf("RCV DATA SEQ=%d LEN=%d", h.Seq, len(payload))
		ack, win := reasm.Accept(h.Seq, payload)
		if err := c.sock.Send(header.Header{Ack: ack, Flags: header.FlagACK, Window: win}, nil); err != nil {
			return err
		}
		c.ev.Logf("SND ACK=%d WIN=%d", ack, win)
	}
}
