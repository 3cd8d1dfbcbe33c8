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

// Package shell wires the tokenizer, job registry, history store and
// executor into the interactive read-eval loop: print a prompt, read a
// line, validate it, run it, reap finished background jobs, repeat.
package shell

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/builtin"
	"github.com/nabbar/rudex/shell/exec"
	"github.com/nabbar/rudex/shell/history"
	"github.com/nabbar/rudex/shell/job"
	"github.com/nabbar/rudex/shell/prompt"
	"github.com/nabbar/rudex/shell/token"
	"github.com/nabbar/rudex/shell/tty"
)

// Session is one running instance of the interactive shell.
type Session struct {
	In     *bufio.Reader
	Out    io.Writer
	Errs   io.Writer
	Prompt *prompt.Renderer

	History *history.Store
	Jobs    *job.Registry
	Exec    *exec.Executor
	Log     *rlog.Logger

	interactive bool
}

// New builds a Session rooted at startDir (the process's working directory
// at launch), re-exec'ing selfPath for pipeline/background built-ins.
func New(in io.Reader, out, errs io.Writer, startDir, selfPath string) (*Session, error) {
	h, err := history.Open(startDir)
	if err != nil {
		return nil, err
	}

	jobs := job.NewRegistry()
	logger := rlog.New(errs, rlog.WarnLevel)

	interactive := tty.IsInteractive(int(os.Stdin.Fd()))

	bc := &builtin.Context{
		StartDir: startDir,
		OldDir:   startDir,
		History:  h,
		Jobs:     jobs,
		Log:      logger,
		Stdout:   out,
		Stderr:   errs,
	}

	ex := &exec.Executor{
		BCtx:     bc,
		Jobs:     jobs,
		Log:      logger,
		SelfPath: selfPath,
	}

	s := &Session{
		In:          bufio.NewReader(in),
		Out:         out,
		Errs:        errs,
		Prompt:      prompt.New(startDir, interactive),
		History:     h,
		Jobs:        jobs,
		Exec:        ex,
		Log:         logger,
		interactive: interactive,
	}

	// log execute k re-parses and re-runs a past command without recording
	// a new history entry; builtin.Log calls this hook instead of calling
	// back into shell.Session directly, since shell imports builtin and a
	// reverse import would cycle.
	builtin.Execute = s.runWithoutHistory

	return s, nil
}

// Run drives the read-eval loop until EOF or a built-in exit.
func (s *Session) Run() int {
	for {
		if s.interactive {
			cwd, err := os.Getwd()
			if err != nil {
				cwd = s.Exec.BCtx.StartDir
			}
			s.Prompt.Print(s.Out, cwd)
		}

		line, err := s.In.ReadString('\n')
		if err == io.EOF && line == "" {
			return s.onEOF()
		}

		if trimmed := trimLine(line); trimmed != "" {
			if runErr := s.runLine(trimmed, true); runErr != nil {
				if ex, ok := runErr.(*builtin.ErrExit); ok {
					return ex.Status
				}
			}
		}

		if err == io.EOF {
			return s.onEOF()
		}
	}
}

func trimLine(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

// runLine tokenizes, validates, optionally records history, runs every
// group on the line, then reaps finished background jobs once per cycle.
func (s *Session) runLine(raw string, record bool) error {
	l := token.Tokenize(raw)
	if err := token.Validate(l); err != nil {
		_, _ = io.WriteString(s.Errs, "Invalid Syntax!\n")
		return nil
	}

	if record {
		_ = s.History.Add(raw)
	}

	err := s.Exec.RunLine(l, raw)

	for _, n := range s.Jobs.Reap() {
		_, _ = io.WriteString(s.Out, n.String()+"\n")
	}

	return err
}

func (s *Session) runWithoutHistory(raw string) error {
	return s.runLine(raw, false)
}

// onEOF implements the terminal end-of-input contract: hard-kill every
// tracked job's process group, print "logout", and exit 0.
func (s *Session) onEOF() int {
	for _, j := range s.Jobs.Snapshot() {
		_ = unix.Kill(-j.PGID, unix.SIGKILL)
	}
	_, _ = io.WriteString(s.Out, "logout\n")
	return 0
}
