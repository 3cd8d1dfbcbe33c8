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

// Package conn drives the RDX connection state machine: the 3-way
// handshake, the sliding-window file transfer (or the chat echo path), and
// the 4-way graceful teardown, all on top of rdx/wire's loss-injecting
// socket.
package conn

import (
	"math/rand"
	"net"
	"time"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/rdx/header"
	"github.com/nabbar/rudex/rdx/loss"
	"github.com/nabbar/rudex/rdx/wire"
)

// windowAdvert is the window size every handshake/control packet advertises
// before any data has been exchanged: DataLen * WinPkts, matching the
// sender package's constants without importing it (conn only needs the
// product, not the sliding-window machinery, for control packets).
const windowAdvert = 1024 * 10

// Conn is an established RDX connection, past the 3-way handshake.
type Conn struct {
	sock     *wire.Socket
	localISN uint32
	peerISN  uint32
	log      *rlog.Logger
	ev       *rlog.EventLog
}

// DialClient performs the client side of the 3-way handshake against
// serverIP:port and returns an established Conn.
func DialClient(serverIP string, port int, sendLoss, recvLoss *loss.Injector, log *rlog.Logger, ev *rlog.EventLog) (*Conn, error) {
	addr := &net.UDPAddr{IP: net.ParseIP(serverIP), Port: port}
	sock, err := wire.Dial(addr, sendLoss, recvLoss)
	if err != nil {
		return nil, err
	}

	isn := randISN()

	if err := sock.Send(header.Header{Seq: isn, Flags: header.FlagSYN, Window: windowAdvert}, nil); err != nil {
		return nil, err
	}
	ev.Logf("SND SYN SEQ=%d", isn)

	var serverISN uint32
	for {
		h, _, _, ok, err := sock.Recv(5 * time.Second)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if h.Flags.Has(header.FlagSYN | header.FlagACK) {
			serverISN = h.Seq
			ev.Logf("RCV SYN SEQ=%d", h.Seq)
			ev.Logf("RCV ACK=%d", h.Ack)
			break
		}
	}

	if err := sock.Send(header.Header{Seq: isn + 1, Ack: serverISN + 1, Flags: header.FlagACK, Window: windowAdvert}, nil); err != nil {
		return nil, err
	}
	ev.Logf("SND ACK FOR SYN")
	log.Info("handshake complete", "role", "client", "peer", addr.String())

	return &Conn{sock: sock, localISN: isn + 1, peerISN: serverISN + 1, log: log, ev: ev}, nil
}

// AcceptServer performs the server side of the 3-way handshake on a freshly
// bound port and returns an established Conn once the initiating client is
// known.
func AcceptServer(port int, sendLoss, recvLoss *loss.Injector, log *rlog.Logger, ev *rlog.EventLog) (*Conn, error) {
	sock, err := wire.Listen(port, sendLoss, recvLoss)
	if err != nil {
		return nil, err
	}

	var clientISN uint32
	var peer *net.UDPAddr
	for {
		h, _, from, ok, err := sock.Recv(24 * time.Hour)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if h.Flags.Has(header.FlagSYN) {
			clientISN = h.Seq
			peer = from
			ev.Logf("RCV SYN SEQ=%d", h.Seq)
			break
		}
	}
	sock.BindPeer(peer)

	isn := randISN()
	if err := sock.Send(header.Header{Seq: isn, Ack: clientISN + 1, Flags: header.FlagSYN | header.FlagACK, Window: windowAdvert}, nil); err != nil {
		return nil, err
	}
	ev.Logf("SND SYN-ACK SEQ=%d ACK=%d", isn, clientISN+1)

	for {
		h, _, _, ok, err := sock.Recv(5 * time.Second)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if h.Flags.Has(header.FlagACK) {
			ev.Logf("RCV ACK FOR SYN")
			break
		}
	}

	log.Info("handshake complete", "role", "server", "peer", peer.String())
	return &Conn{sock: sock, localISN: isn + 1, peerISN: clientISN + 1, log: log, ev: ev}, nil
}

// Close releases the underlying socket and event log.
func (c *Conn) Close() error {
	_ = c.ev.Close()
	return c.sock.Close()
}

func randISN() uint32 {
	return uint32(rand.Int31())
}
