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
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Reveal lists directory entries, grounded on partB.c's executeReveal:
// -a includes dotfiles, -l prints one entry per line (combinable as -la or
// -al), and at most one non-flag argument selects the target directory
// ("-" = OldDir, "~" = StartDir, "." / ".." resolved by the OS, anything
// else a literal path; default is the current directory).
func Reveal(c *Context, args []string) error {
	all, oneLine, path, err := revealFlags(c, args)
	if err != nil {
		c.errorf("reveal: Invalid Syntax!")
		return nil
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		c.println("No such directory!")
		return nil
	}
	if !info.IsDir() {
		c.println(path)
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		c.println("No such directory!")
		return nil
	}

	var names []string
	for _, e := range entries {
		if !all && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if oneLine {
		for _, n := range names {
			c.println(n)
		}
		return nil
	}
	c.println(strings.Join(names, "  "))
	return nil
}

func revealFlags(c *Context, args []string) (all, oneLine bool, path string, err error) {
	pathSet := false
	for _, a := range args {
		switch {
		case len(a) > 1 && a[0] == '-' && a != "-":
			for _, f := range a[1:] {
				if f != 'a' && f != 'l' {
					return false, false, "", errInvalidReveal
				}
				if f == 'a' {
					all = true
				}
				if f == 'l' {
					oneLine = true
				}
			}
		case a == "-":
			if pathSet {
				return false, false, "", errInvalidReveal
			}
			pathSet = true
			path = c.OldDir
		case a == "~":
			if pathSet {
				return false, false, "", errInvalidReveal
			}
			pathSet = true
			path = c.StartDir
		default:
			if pathSet {
				return false, false, "", errInvalidReveal
			}
			pathSet = true
			path = a
		}
	}
	if !pathSet {
		path, err = os.Getwd()
		if err != nil {
			return false, false, "", err
		}
	}
	if path == "." || path == ".." {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return all, oneLine, path, nil
}

var errInvalidReveal = errInvalid("reveal")

type invalidArgError string

func (e invalidArgError) Error() string { return string(e) }

func errInvalid(cmd string) error { return invalidArgError(cmd + ": invalid arguments") }
