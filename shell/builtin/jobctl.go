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

package builtin

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/nabbar/rudex/shell/job"
	"github.com/nabbar/rudex/shell/tty"
)

// Fg implements executes.c's fg handling: with no argument it resumes the
// most recently added job; otherwise args[0] is the job's pid. It hands the
// controlling terminal to the job's process group, sends SIGCONT, waits
// stop-aware, and either re-registers it Stopped or removes it once it has
// exited.
func Fg(c *Context, args []string) error {
	j, err := resolveJob(c, args)
	if err != nil {
		c.errorf("%s", err.Error())
		return nil
	}

	tty.GivePGroup(j.PGID)
	_ = unix.Kill(-j.PGID, unix.SIGCONT)

	var ws unix.WaitStatus
	_, _ = unix.Wait4(j.PID, &ws, unix.WUNTRACED, nil)
	tty.ReclaimSelf()

	if ws.Stopped() {
		c.Jobs.SetKind(j.PID, job.Stopped)
	} else {
		c.Jobs.Remove(j.PID)
	}
	return nil
}

// Bg implements executes.c's bg handling: resumes a stopped job's process
// group in place (no terminal transfer) and marks it Background/running.
func Bg(c *Context, args []string) error {
	j, err := resolveJob(c, args)
	if err != nil {
		c.errorf("%s", err.Error())
		return nil
	}
	if err := unix.Kill(-j.PGID, unix.SIGCONT); err != nil {
		c.println("No such process found")
		return nil
	}
	c.Jobs.SetKind(j.PID, job.Background)
	c.println(fmt.Sprintf("[%d] %s &", j.Num, j.Command))
	return nil
}

func resolveJob(c *Context, args []string) (*job.Job, error) {
	if len(args) == 0 {
		jobs := c.Jobs.Snapshot()
		if len(jobs) == 0 {
			return nil, errNoSuchJob
		}
		latest := jobs[0]
		for _, j := range jobs[1:] {
			if j.Num > latest.Num {
				latest = j
			}
		}
		return &latest, nil
	}
	if len(args) != 1 {
		return nil, errInvalidSyntax
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return nil, errInvalidSyntax
	}
	j, ok := c.Jobs.Find(pid)
	if !ok {
		return nil, errNoSuchJob
	}
	return j, nil
}

var errNoSuchJob = invalidArgError("No such job")
var errInvalidSyntax = invalidArgError("Invalid syntax!")
