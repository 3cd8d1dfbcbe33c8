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

import "os"

// Hop changes the working directory, one argument at a time, matching
// partB.c's executeHop: zero args chdir to StartDir; "-" restores OldDir;
// "." is a no-op; ".." goes up one level; "~" goes to StartDir; anything
// else is chdir'd literally. Each successful change updates OldDir; each
// failure prints "No such directory!" and moves on to the next argument.
func Hop(c *Context, args []string) error {
	if len(args) == 0 {
		return c.chdir(c.StartDir)
	}
	for _, a := range args {
		switch a {
		case "-":
			if c.OldDir == "" {
				c.println("No such directory!")
				continue
			}
			_ = c.chdir(c.OldDir)
		case ".":
			// stay put
		case "..":
			_ = c.chdir("..")
		case "~":
			_ = c.chdir(c.StartDir)
		default:
			_ = c.chdir(a)
		}
	}
	return nil
}

func (c *Context) chdir(dir string) error {
	cur, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		c.println("No such directory!")
		return err
	}
	c.OldDir = cur
	return nil
}
