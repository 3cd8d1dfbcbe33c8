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
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/nabbar/rudex/rdx/header"
)

// Chat replaces the file-transfer pipeline with an echo path: every line
// read from in is sent in one DATA packet (SEQ unused, always 0), and every
// received DATA packet's payload is written to out. A line beginning with
// "/quit" initiates the 4-way FIN teardown and returns.
func (c *Conn) Chat(in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
		readErr <- sc.Err()
		close(lines)
	}()

	for {
		select {
		case line, open := <-lines:
			if !open {
				return nil
			}
			if strings.HasPrefix(line, "/quit") {
				return c.chatQuit()
			}
			if err := c.sock.Send(header.Header{Flags: header.FlagACK, Window: windowAdvert}, []byte(line+"\n")); err != nil {
				return err
			}
			c.ev.Logf("SND DATA SEQ=0 LEN=%d", len(line)+1)
		default:
			h, payload, _, ok, err := c.sock.Recv(50 * time.Millisecond)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if h.Flags.Has(header.FlagFIN) {
				c.ev.Logf("RCV FIN SEQ=%d", h.Seq)
				return c.RespondToPeerFIN(h.Seq, 0)
			}
			if len(payload) > 0 {
				c.ev.Logf("RCV DATA SEQ=0 LEN=%d", len(payload))
				_, _ = out.Write(payload)
			}
		}
	}
}

func (c *Conn) chatQuit() error {
	// lastByte = ^uint32(0) so InitiateTeardown's finSeq = lastByte+1 wraps
	// to 0: chat mode never uses the SEQ field, so the FIN it sends must
	// carry the same SEQ=0 convention as every chat DATA packet.
	return c.InitiateTeardown(^uint32(0))
}
