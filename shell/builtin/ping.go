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
	"strconv"

	"golang.org/x/sys/unix"
)

// Ping implements executes.c's executePing: "ping pid sig" normalises sig
// to ((sig mod 32)+32) mod 32 and delivers it, reporting success or
// "No such process found" on kill failure. Afterwards it forces an
// immediate reap pass so activities reflects any resulting termination,
// and prints the exit notice of every job that pass removes.
func Ping(c *Context, args []string) error {
	if len(args) != 2 {
		c.errorf("Invalid syntax!")
		return nil
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		c.errorf("Invalid syntax!")
		return nil
	}
	if pid <= 0 {
		c.println("No such process found")
		return nil
	}
	sigArg, err := strconv.Atoi(args[1])
	if err != nil {
		c.errorf("Invalid syntax!")
		return nil
	}
	sig := ((sigArg % 32) + 32) % 32
	if err := unix.Kill(pid, unix.Signal(sig)); err != nil {
		c.println("No such process found")
		return nil
	}
	c.println(sprintSent(sig, pid))
	for _, n := range c.Jobs.Reap() {
		c.println(n.String())
	}
	return nil
}

func sprintSent(sig, pid int) string {
	return "Sent signal " + strconv.Itoa(sig) + " to process with pid " + strconv.Itoa(pid)
}
