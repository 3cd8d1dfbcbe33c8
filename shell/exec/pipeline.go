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

package exec

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/nabbar/rudex/shell/token"
)

// pipeline is N atomics wired by N-1 os.Pipe()s, all joined into one
// process group: the first process started becomes the group leader, and
// every later process joins that group via SysProcAttr.Pgid, mirroring
// executes.c's executeCmdGroup fork loop.
type pipeline struct {
	cmds      []*exec.Cmd
	pipeEnds  []*os.File // both ends of each internal pipe, read then write, for closeParentEnds
	pgid      int
	leaderPid int
}

func (ex *Executor) buildPipeline(atomics []token.Atomic) (*pipeline, error) {
	n := len(atomics)
	p := &pipeline{cmds: make([]*exec.Cmd, n)}

	readEnds := make([]*os.File, n-1)
	writeEnds := make([]*os.File, n-1)
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			p.closeParentEnds()
			return nil, err
		}
		readEnds[i], writeEnds[i] = r, w
		p.pipeEnds = append(p.pipeEnds, r, w)
	}

	for i, a := range atomics {
		argv := ex.argvFor(a)
		if len(argv) == 0 {
			p.closeParentEnds()
			return nil, fmt.Errorf("empty atomic in pipeline")
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		if i > 0 {
			cmd.Stdin = readEnds[i-1]
		}
		if i < n-1 {
			cmd.Stdout = writeEnds[i]
		}

		redirIn, redirOut, err := openRedirections(a)
		if err != nil {
			p.closeParentEnds()
			return nil, err
		}
		if redirIn != nil {
			cmd.Stdin = redirIn
		}
		if redirOut != nil {
			cmd.Stdout = redirOut
		}

		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
		p.cmds[i] = cmd
	}
	return p, nil
}

func (p *pipeline) start() error {
	for i, cmd := range p.cmds {
		if i > 0 {
			cmd.SysProcAttr.Pgid = p.pgid
		}
		if err := cmd.Start(); err != nil {
			return err
		}
		if i == 0 {
			p.pgid = cmd.Process.Pid
			p.leaderPid = cmd.Process.Pid
		}
	}
	return nil
}

func (p *pipeline) leaderPID() int { return p.leaderPid }

// closeParentEnds closes every pipe file descriptor the parent holds once
// the children have them (or pipeline construction failed partway). The
// caller must close these before waitAll: a downstream reader never sees
// EOF while the parent keeps its own copy of a pipe's write end open.
func (p *pipeline) closeParentEnds() {
	for _, f := range p.pipeEnds {
		_ = f.Close()
	}
}

// waitAll waits, stop-aware, for every member of the pipeline and reports
// whether any of them stopped rather than exited.
func (p *pipeline) waitAll() (anyStopped bool) {
	for _, cmd := range p.cmds {
		if cmd.Process == nil {
			continue
		}
		var ws unix.WaitStatus
		if _, err := unix.Wait4(cmd.Process.Pid, &ws, unix.WUNTRACED, nil); err != nil {
			continue
		}
		if ws.Stopped() {
			anyStopped = true
		}
	}
	return anyStopped
}

// reapDetached blocks (without WNOHANG) on every non-leader pipeline
// member so they never become zombies. The leader itself is left for
// job.Registry.Reap's single authoritative, non-blocking poll: waiting on
// it here too would race the registry for the same pid's exit status.
func (p *pipeline) reapDetached() {
	for _, cmd := range p.cmds {
		if cmd.Process == nil || cmd.Process.Pid == p.leaderPid {
			continue
		}
		var ws unix.WaitStatus
		_, _ = unix.Wait4(cmd.Process.Pid, &ws, 0, nil)
	}
}
