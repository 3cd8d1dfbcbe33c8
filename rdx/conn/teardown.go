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
)

// InitiateTeardown runs the 4-way graceful FIN exchange from the
// initiator's side: send FIN, wait for the peer's ACK and its own FIN, ACK
// that FIN, then return. There is no TIME_WAIT: the caller closes
// immediately after this returns.
func (c *Conn) InitiateTeardown(lastByte uint32) error {
	finSeq := lastByte + 1
	if err := c.sock.Send(header.Header{Seq: finSeq, Flags: header.FlagFIN, Window: windowAdvert}, nil); err != nil {
		return err
	}
	c.ev.Logf("SND FIN SEQ=%d", finSeq)

	gotAck, gotFin := false, false
	for !(gotAck && gotFin) {
		h, _, _, ok, err := c.sock.Recv(2 * time.Second)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if h.Flags.Has(header.FlagACK) && !gotAck {
			gotAck = true
			c.ev.Logf("RCV ACK=%d", h.Ack)
		}
		if h.Flags.Has(header.FlagFIN) {
			gotFin = true
			c.ev.Logf("RCV FIN SEQ=%d", h.Seq)
			if err := c.sock.Send(header.Header{Seq: finSeq + 1, Ack: h.Seq + 1, Flags: header.FlagACK, Window: windowAdvert}, nil); err != nil {
				return err
			}
			c.ev.Logf("SND ACK=%d", h.Seq+1)
		}
	}
	return nil
}

// RespondToPeerFIN handles a FIN arriving while this side is still
// ESTABLISHED: ACK it, send this side's own FIN, then wait for the final
// ACK. The caller has already flushed any pending data to its consumer.
func (c *Conn) RespondToPeerFIN(peerFinSeq uint32, ownLastByte uint32) error {
	if err := c.sock.Send(header.Header{Ack: peerFinSeq + 1, Flags: header.FlagACK, Window: windowAdvert}, nil); err != nil {
		return err
	}
	c.ev.Logf("SND ACK FOR FIN")

	ownFinSeq := ownLastByte + 1
	if err := c.sock.Send(header.Header{Seq: ownFinSeq, Flags: header.FlagFIN, Window: windowAdvert}, nil); err != nil {
		return err
	}
	c.ev.Logf("SND FIN SEQ=%d", ownFinSeq)

	for {
		h, _, _, ok, err := c.sock.Recv(2 * time.Second)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if h.Flags.Has(header.FlagACK) {
			c.ev.Logf("RCV ACK=%d", h.Ack)
			return nil
		}
	}
}
