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

// Package xerr classifies errors raised by the transport and the shell into
// a small fixed taxonomy, so callers can branch on "what kind of failure is
// this" without string-matching messages.
package xerr

import (
	"errors"
	"fmt"
)

// Code is the error class. Unlike a general-purpose HTTP-style catalogue,
// this taxonomy has exactly six members and is never extended at runtime.
type Code uint8

const (
	// Unknown wraps an error that was never classified.
	Unknown Code = iota
	// TransientIO is a single interrupted syscall; callers retry in place.
	TransientIO
	// PeerProtocolViolation is a malformed header or missing protocol
	// precondition; callers abort the connection.
	PeerProtocolViolation
	// LossyChannel marks a retransmit/timeout event; it never escalates.
	LossyChannel
	// UserSyntax is a shell tokenizer/validator rejection.
	UserSyntax
	// NotFound covers missing directories, commands, or processes.
	NotFound
	// Fatal covers resource-exhaustion failures that abort the process.
	Fatal
)

func (c Code) String() string {
	switch c {
	case TransientIO:
		return "transient-io"
	case PeerProtocolViolation:
		return "peer-protocol-violation"
	case LossyChannel:
		return "lossy-channel"
	case UserSyntax:
		return "user-syntax"
	case NotFound:
		return "not-found"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// E is a classified error: a code plus a wrapped cause.
type E struct {
	code Code
	msg  string
	err  error
}

func (e *E) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *E) Unwrap() error {
	return e.err
}

// Code returns the taxonomy member carried by e, or Unknown if e is nil or
// was never classified through this package.
func (e *E) Code() Code {
	if e == nil {
		return Unknown
	}
	return e.code
}

// New builds a classified error with no wrapped cause.
func New(code Code, msg string) *E {
	return &E{code: code, msg: msg}
}

// Newf builds a classified error with a formatted message.
func Newf(code Code, format string, args ...any) *E {
	return &E{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy code to an existing error. Wrapping nil returns
// nil, so call sites can write `return xerr.Wrap(xerr.TransientIO, "read", err)`
// unconditionally after an `if err != nil` has already been taken.
func Wrap(code Code, msg string, err error) *E {
	if err == nil {
		return nil
	}
	return &E{code: code, msg: msg, err: err}
}

// Is reports whether err carries the given code anywhere in its Unwrap chain.
func Is(err error, code Code) bool {
	var e *E
	for err != nil {
		if errors.As(err, &e) {
			if e.code == code {
				return true
			}
			err = e.err
			continue
		}
		return false
	}
	return false
}

// Of extracts the classified error from err's chain, if any.
func Of(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
