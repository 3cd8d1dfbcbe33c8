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

// Package prompt renders the interactive shell prompt "<user@host:path>",
// substituting the session's start directory for '~' the way the reference
// shell's getPathToPrint does, and colorizing it the way the rest of this
// codebase colorizes interactive output.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Renderer produces the prompt string for one read-eval cycle. HomeDir is
// the absolute path substituted by '~' (the shell's start directory, per
// this shell's single-session notion of "home"); User and Host are sampled
// once at startup.
type Renderer struct {
	User    string
	Host    string
	HomeDir string

	// Paint colors the rendered prompt. nil disables coloring, matching a
	// non-interactive or dumb terminal.
	Paint *color.Color
}

// New builds a Renderer from the current process's login name and
// hostname, painting the prompt in bold cyan when paint is true.
func New(homeDir string, paint bool) *Renderer {
	r := &Renderer{
		User:    currentUser(),
		Host:    currentHost(),
		HomeDir: homeDir,
	}
	if paint {
		r.Paint = color.New(color.FgCyan, color.Bold)
	}
	return r
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("LOGNAME"); u != "" {
		return u
	}
	return "user"
}

func currentHost() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}

// isSubstring reports whether absPath is a leading substring of currPath,
// mirroring the reference shell's byte-for-byte prefix check.
func isSubstring(absPath, currPath string) bool {
	return len(absPath) <= len(currPath) && currPath[:len(absPath)] == absPath
}

// pathToPrint replaces a leading HomeDir in cwd with '~', or returns cwd
// unchanged when it isn't rooted under HomeDir.
func (r *Renderer) pathToPrint(cwd string) string {
	if isSubstring(r.HomeDir, cwd) {
		return "~" + strings.TrimPrefix(cwd, r.HomeDir)
	}
	return cwd
}

// Render returns the literal prompt text "<user@host:path>" for the given
// current working directory.
func (r *Renderer) Render(cwd string) string {
	return fmt.Sprintf("<%s@%s:%s>", r.User, r.Host, r.pathToPrint(cwd))
}

// Print writes the rendered prompt to w, with a trailing space and no
// newline, painted if Paint is set. Callers are expected to only invoke
// this when stdin is a terminal.
func (r *Renderer) Print(w io.Writer, cwd string) {
	text := r.Render(cwd) + " "
	if r.Paint != nil {
		_, _ = r.Paint.Fprint(w, text)
		return
	}
	_, _ = fmt.Fprint(w, text)
}
