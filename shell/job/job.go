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

// Package job tracks every background or stopped pipeline the shell has
// spawned, in one registry shared by "activities", "fg", "bg", and the
// periodic non-blocking reaper. The original reference shell kept two
// separate lists (a transient "background jobs" list used only to print
// exit notices, and a longer-lived "jobs" list used by activities/fg/bg);
// this registry merges them so there is exactly one place a pipeline's
// state can be observed or mutated, with Kind recording why it is tracked.
package job

import "sync"

// Kind distinguishes why a job is still being tracked.
type Kind uint8

const (
	// Background is a job running asynchronously after a trailing '&'.
	Background Kind = iota
	// Stopped is a foreground or background job a signal has suspended.
	Stopped
)

func (k Kind) String() string {
	if k == Stopped {
		return "Stopped"
	}
	return "Running"
}

// Job is one tracked pipeline leader.
type Job struct {
	Num     int
	PID     int
	PGID    int
	Command string
	Kind    Kind
}

// Registry is the shell's single job table, safe for concurrent use by the
// foreground executor and the background reaper goroutine.
type Registry struct {
	mu   sync.Mutex
	next int
	jobs []*Job
}

// NewRegistry returns an empty registry; job numbers start at 1.
func NewRegistry() *Registry {
	return &Registry{next: 1}
}

// Add registers a newly spawned pipeline leader and returns its job number.
func (r *Registry) Add(pid, pgid int, command string, kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	num := r.next
	r.next++
	r.jobs = append(r.jobs, &Job{Num: num, PID: pid, PGID: pgid, Command: command, Kind: kind})
	return num
}

// SetKind updates an existing job's Kind by pid, for example when "fg"
// discovers the job it resumed stopped again. It is a no-op if pid is not
// tracked.
func (r *Registry) SetKind(pid int, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.PID == pid {
			j.Kind = kind
			return
		}
	}
}

// Remove drops the job tracked under pid, for example once it has exited.
func (r *Registry) Remove(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, j := range r.jobs {
		if j.PID == pid {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return
		}
	}
}

// Find returns the job tracked under pid, if any.
func (r *Registry) Find(pid int) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.PID == pid {
			cp := *j
			return &cp, true
		}
	}
	return nil, false
}

// Snapshot returns every tracked job, sorted by Command as "activities"
// requires, safe for the caller to range over without holding the
// registry's lock.
func (r *Registry) Snapshot() []Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Job, len(r.jobs))
	for i, j := range r.jobs {
		out[i] = *j
	}
	sortByCommand(out)
	return out
}

func sortByCommand(jobs []Job) {
	for i := 1; i < len(jobs); i++ {
		for j := i; j > 0 && jobs[j].Command < jobs[j-1].Command; j-- {
			jobs[j], jobs[j-1] = jobs[j-1], jobs[j]
		}
	}
}
