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
	"github.com/nabbar/rudex/shell/builtin"
	"github.com/nabbar/rudex/shell/token"
)

// RunLine executes every command group in l strictly left to right,
// exactly as the reference shell's executeShellCommand loop: each group
// runs (or is backgrounded) before the next one starts. raw is the
// original input line; it is not used here, and each group's job label is
// rebuilt from the parse tree instead. RunLine stops and returns *builtin.ErrExit
// unchanged the moment "exit" is reached.
func (ex *Executor) RunLine(l token.Line, raw string) error {
	for _, g := range l.Groups {
		if err := ex.RunGroup(g, groupSource(g)); err != nil {
			if _, ok := err.(*builtin.ErrExit); ok {
				return err
			}
			// A single group's failure (command not found, broken pipe)
			// does not abort the remaining groups on the line.
			continue
		}
	}
	return nil
}

func groupSource(g token.CommandGroup) string {
	var out string
	for ai, a := range g.Atomics {
		if ai > 0 {
			out += " | "
		}
		for ti, t := range a.Terminals {
			if ti > 0 {
				out += " " + a.Terminals[ti-1].Sep
			}
			for wi, w := range t.Words {
				if wi > 0 || ti > 0 {
					out += " "
				}
				out += w
			}
		}
	}
	return out
}
