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

// Package exec walks a tokenized command group and runs it: a single
// foreground built-in executes directly in this process; anything else
// (external commands, multi-stage pipelines, backgrounded groups) spawns
// one OS process per atomic, wired together with pipes, redirections, and
// a shared process group, grounded on the reference shell's executes.c.
package exec

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/builtin"
	"github.com/nabbar/rudex/shell/job"
	"github.com/nabbar/rudex/shell/token"
	"github.com/nabbar/rudex/shell/tty"
)

// Executor owns everything a running pipeline needs beyond the parse tree:
// the builtin context, the job registry, and the path to re-exec for
// subprocess builtins.
type Executor struct {
	BCtx *builtin.Context
	Jobs *job.Registry
	Log  *rlog.Logger

	// SelfPath is this binary's own executable path, used to re-invoke a
	// builtin as a subprocess when it is one stage of a pipeline or a
	// background job (see shell/builtin.RunSubprocess).
	SelfPath string
}

// RunGroup executes one command group: synchronously, or as a background
// job if its trailing separator is '&'.
func (ex *Executor) RunGroup(g token.CommandGroup, raw string) error {
	if g.Background() {
		return ex.runBackground(g, raw)
	}
	return ex.runForeground(g, raw)
}

func (ex *Executor) runForeground(g token.CommandGroup, raw string) error {
	if len(g.Atomics) == 1 && isBuiltin(g.Atomics[0]) {
		args := g.Atomics[0].Args()
		return builtin.Dispatch(ex.BCtx, args)
	}

	p, err := ex.buildPipeline(g.Atomics)
	if err != nil {
		return err
	}

	if err := p.start(); err != nil {
		p.closeParentEnds()
		return err
	}
	p.closeParentEnds()

	tty.GivePGroup(p.pgid)
	anyStopped := p.waitAll()
	tty.ReclaimSelf()

	if anyStopped {
		num := ex.Jobs.Add(p.leaderPID(), p.pgid, raw, job.Stopped)
		fmt.Fprintf(ex.BCtx.Stdout, "[%d] Stopped %s\n", num, raw)
	}
	return nil
}

func (ex *Executor) runBackground(g token.CommandGroup, raw string) error {
	p, err := ex.buildPipeline(g.Atomics)
	if err != nil {
		return err
	}
	defer p.closeParentEnds()

	if err := p.start(); err != nil {
		return err
	}

	num := ex.Jobs.Add(p.leaderPID(), p.pgid, raw, job.Background)
	fmt.Fprintf(ex.BCtx.Stdout, "[%d] %d\n", num, p.leaderPID())

	go p.reapDetached()
	return nil
}

func isBuiltin(a token.Atomic) bool {
	args := a.Args()
	return len(args) > 0 && builtin.Names[args[0]]
}

// argvFor resolves one atomic's argv0: builtin atomics inside a pipeline or
// background group re-exec this binary in subprocess-builtin mode.
func (ex *Executor) argvFor(a token.Atomic) []string {
	args := a.Args()
	if isBuiltin(a) {
		return append([]string{ex.SelfPath, builtin.InternalFlag}, args...)
	}
	return args
}

func openRedirections(a token.Atomic) (stdin, stdout *os.File, err error) {
	for _, r := range a.Redirections() {
		if len(r.Words) == 0 {
			continue
		}
		name := r.Words[0]
		switch r.Sep {
		case "<":
			f, e := os.Open(name)
			if e != nil {
				return nil, nil, e
			}
			stdin = f
		case ">":
			f, e := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if e != nil {
				return nil, nil, e
			}
			stdout = f
		case ">>":
			f, e := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
			if e != nil {
				return nil, nil, e
			}
			stdout = f
		}
	}
	return stdin, stdout, nil
}

