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

// Func is one built-in's implementation.
type Func func(c *Context, args []string) error

var table = map[string]Func{
	"hop":        Hop,
	"reveal":     Reveal,
	"log":        Log,
	"activities": Activities,
	"ping":       Ping,
	"fg":         Fg,
	"bg":         Bg,
	"exit":       Exit,
}

// Dispatch runs the built-in named by args[0] in the current process.
// Callers must check Names[args[0]] first; Dispatch panics on an unknown
// name since that indicates a caller bug, not user input.
func Dispatch(c *Context, args []string) error {
	fn, ok := table[args[0]]
	if !ok {
		panic("builtin: unknown command " + args[0])
	}
	return fn(c, args[1:])
}
