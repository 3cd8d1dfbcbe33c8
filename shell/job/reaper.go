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

package job

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Notice describes one background job's state transition as discovered by
// Reap, for the caller to print ("<cmd> with pid <pid> exited normally").
type Notice struct {
	Job    Job
	Normal bool
}

// Reap polls every Background-kind job with a non-blocking, non-hanging
// wait, removing and reporting any that have exited, and demoting any that
// report stopped to Kind Stopped. The foreground executor waits on its own
// children directly and never shares them with the registry until they
// stop or it gives up waiting; fg's blocking wait on a job leader runs on
// the same goroutine as Reap, so the two never wait on a pid at once.
func (r *Registry) Reap() []Notice {
	r.mu.Lock()
	snapshot := make([]*Job, len(r.jobs))
	copy(snapshot, r.jobs)
	r.mu.Unlock()

	var notices []Notice
	for _, j := range snapshot {
		if j.Kind != Background {
			continue
		}
		var ws unix.WaitStatus
		pid, err := unix.Wait4(j.PID, &ws, unix.WNOHANG|unix.WUNTRACED, nil)
		if err != nil || pid == 0 {
			continue
		}
		switch {
		case ws.Exited() || ws.Signaled():
			r.Remove(j.PID)
			notices = append(notices, Notice{Job: *j, Normal: ws.Exited() && ws.ExitStatus() == 0})
		case ws.Stopped():
			r.SetKind(j.PID, Stopped)
		}
	}
	return notices
}

// String renders a Notice the way the reference shell prints it to stdout.
func (n Notice) String() string {
	if n.Normal {
		return fmt.Sprintf("%s with pid %d exited normally", n.Job.Command, n.Job.PID)
	}
	return fmt.Sprintf("%s with pid %d exited abnormally", n.Job.Command, n.Job.PID)
}
