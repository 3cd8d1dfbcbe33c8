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

// Package builtin implements the shell's in-process commands: hop, reveal,
// log, activities, ping, fg, bg, and exit. Each one is grounded on the
// reference shell's partB.c (hop/reveal/log) and executes.c
// (activities/ping/fg/bg/exit), adapted to run either directly in the
// shell's own process (the common, single-atomic foreground case) or
// re-invoked as a subprocess when it is one stage of a pipeline or a
// backgrounded group (see RunSubprocess).
package builtin

import (
	"fmt"
	"io"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/history"
	"github.com/nabbar/rudex/shell/job"
)

// Names lists every built-in command, for the executor's dispatch check.
var Names = map[string]bool{
	"hop": true, "reveal": true, "log": true, "activities": true,
	"ping": true, "fg": true, "bg": true, "exit": true,
}

// ErrExit is returned by Exit to signal the shell's main loop to terminate;
// it is never itself the cause of a non-zero exit status.
type ErrExit struct{ Status int }

func (e *ErrExit) Error() string { return "exit requested" }

// Context is the long-lived shell state every built-in reads or mutates:
// the (start, old) working-directory pair, the history store, the job
// registry, and the streams a built-in writes to. One Context is created
// per shell session and passed explicitly through the call tree, per the
// "collapse global mutable state into one context value" design.
type Context struct {
	StartDir string
	OldDir   string

	History *history.Store
	Jobs    *job.Registry
	Log     *rlog.Logger

	Stdout io.Writer
	Stderr io.Writer
}

func (c *Context) errorf(format string, args ...any) {
	fmt.Fprintf(c.Stderr, format+"\n", args...)
}

func (c *Context) println(s string) {
	io.WriteString(c.Stdout, s+"\n")
}
