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

// Command rudex-shell is the interactive shell. Invoked normally it reads
// commands from stdin; invoked with the hidden internal-builtin flag it
// runs a single built-in as its entire program, the re-exec target a
// pipeline or background job uses to run a built-in as its own process.
package main

import (
	"os"

	"github.com/nabbar/rudex/shell"
	"github.com/nabbar/rudex/shell/builtin"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == builtin.InternalFlag {
		startDir := os.Getenv("PWD")
		if startDir == "" {
			startDir, _ = os.Getwd()
		}
		os.Exit(builtin.RunSubprocess(startDir, startDir, os.Args[2:]))
	}

	self, err := os.Executable()
	if err != nil {
		self = os.Args[0]
	}
	startDir, err := os.Getwd()
	if err != nil {
		startDir = "."
	}

	s, err := shell.New(os.Stdin, os.Stdout, os.Stderr, startDir, self)
	if err != nil {
		os.Exit(1)
	}
	os.Exit(s.Run())
}
