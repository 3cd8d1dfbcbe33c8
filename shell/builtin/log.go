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

import "strconv"

// Execute, set when the shell wires this builtin package to its executor,
// re-parses and runs a "log execute k" target without recording a new
// history entry. It is a function variable rather than an import because
// the executor package (shell/exec) already imports shell/builtin for
// dispatch, and a direct import back would cycle.
var Execute func(cmdString string) error

// Log implements partB.c's executeLog: no args prints history newest
// first; "purge" clears it; "execute k" re-runs the k-th most recent entry.
func Log(c *Context, args []string) error {
	switch {
	case len(args) == 0:
		for _, e := range c.History.Entries() {
			c.println(e)
		}
		return nil
	case len(args) == 1 && args[0] == "purge":
		return c.History.Purge()
	case len(args) == 2 && args[0] == "execute":
		k, err := strconv.Atoi(args[1])
		if err != nil || k < 1 || k > c.History.Len() {
			c.errorf("log: Invalid Syntax!")
			return nil
		}
		cmd, ok := c.History.At(k)
		if !ok {
			c.errorf("log: Invalid Syntax!")
			return nil
		}
		if Execute != nil {
			return Execute(cmd)
		}
		return nil
	default:
		c.errorf("log: Invalid Syntax!")
		return nil
	}
}
