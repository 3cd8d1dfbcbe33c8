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

package token

import (
	"strings"

	"github.com/nabbar/rudex/internal/xerr"
)

// invalidSyntaxMsg is the exact user-visible message on any validation
// failure, regardless of which rule tripped.
const invalidSyntaxMsg = "Invalid Syntax!"

// Validate walks line and rejects it with a *xerr.E (code UserSyntax) on the
// first rule it breaks:
//   - no empty command group, atomic, or terminal argument list
//   - the outer separator sequence may end only in empty or "&"
//   - pipes may not be trailing ("ls |" is invalid)
//   - redirection sigils must be followed by a non-empty filename terminal
//   - argument tokens must not contain any of "| ; & < >"
func Validate(l Line) error {
	if len(l.Groups) == 0 {
		return invalidSyntax()
	}
	for gi, g := range l.Groups {
		if err := validateGroup(g); err != nil {
			return err
		}
		last := gi == len(l.Groups)-1
		if !last && g.Sep != ";" && g.Sep != "&" {
			return invalidSyntax()
		}
		if last && g.Sep != "" && g.Sep != "&" {
			return invalidSyntax()
		}
	}
	return nil
}

func validateGroup(g CommandGroup) error {
	if len(g.Atomics) == 0 {
		return invalidSyntax()
	}
	for ai, a := range g.Atomics {
		if err := validateAtomic(a); err != nil {
			return err
		}
		last := ai == len(g.Atomics)-1
		if last && a.Sep == "|" {
			return invalidSyntax()
		}
	}
	return nil
}

func validateAtomic(a Atomic) error {
	if len(a.Terminals) == 0 {
		return invalidSyntax()
	}
	for ti, t := range a.Terminals {
		if len(t.Words) == 0 {
			return invalidSyntax()
		}
		for _, w := range t.Words {
			if strings.ContainsAny(w, "|;&<>") {
				return invalidSyntax()
			}
		}
		isRedirSigil := t.Sep == "<" || t.Sep == ">" || t.Sep == ">>"
		last := ti == len(a.Terminals)-1
		if isRedirSigil {
			if last {
				// a sigil with nothing after it has no filename terminal
				return invalidSyntax()
			}
			next := a.Terminals[ti+1]
			if len(next.Words) == 0 {
				return invalidSyntax()
			}
		}
	}
	return nil
}

func invalidSyntax() error {
	return xerr.New(xerr.UserSyntax, invalidSyntaxMsg)
}
