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

// Package tty transfers controlling-terminal ownership between the shell
// and a foreground pipeline's process group, and silences the
// stop-on-background-write signals a shell process must ignore.
package tty

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// IsInteractive reports whether fd is a terminal; the shell only prints a
// prompt and transfers terminal control when this holds.
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}

// IgnoreJobControlSignals sets SIGTTIN/SIGTTOU/SIGTSTP to be ignored in the
// calling process, the disposition a shell needs so that giving up terminal
// control to a child's process group doesn't stop the shell itself.
func IgnoreJobControlSignals() {
	signal.Ignore(unix.SIGTTIN, unix.SIGTTOU, unix.SIGTSTP)
}

// GivePGroup hands stdin's controlling terminal to pgid, the standard
// precondition for letting a foreground process group read/write the tty
// and receive ^C/^Z. A non-terminal stdin makes this a no-op.
func GivePGroup(pgid int) {
	if !IsInteractive(int(os.Stdin.Fd())) {
		return
	}
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, pgid)
}

// ReclaimSelf hands the controlling terminal back to the shell's own
// process group, called once a foreground pipeline has exited or stopped.
func ReclaimSelf() {
	if !IsInteractive(int(os.Stdin.Fd())) {
		return
	}
	pgid := unix.Getpgrp()
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, pgid)
}
