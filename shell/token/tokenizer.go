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
	"unicode"
)

// Tokenize splits line into the three-level parse tree described by the
// package doc. It never fails: malformed input simply produces a tree that
// Validate will reject.
func Tokenize(line string) Line {
	var groups []CommandGroup
	for _, part := range splitTop(line, ";&") {
		groups = append(groups, CommandGroup{
			Atomics: tokenizeAtomics(part.text),
			Sep:     part.sep,
		})
	}
	return Line{Groups: groups}
}

func tokenizeAtomics(cmdGroup string) []Atomic {
	var atomics []Atomic
	for _, part := range splitTop(cmdGroup, "|") {
		atomics = append(atomics, Atomic{
			Terminals: tokenizeTerminals(part.text),
			Sep:       part.sep,
		})
	}
	return atomics
}

func tokenizeTerminals(atomic string) []Terminal {
	var terms []Terminal
	n := len(atomic)
	i := 0
	for i < n {
		if unicode.IsSpace(rune(atomic[i])) {
			i++
			continue
		}
		start := i
		for i < n && atomic[i] != '<' && atomic[i] != '>' {
			i++
		}
		words := strings.Fields(atomic[start:i])

		var sep string
		switch {
		case i < n && atomic[i] == '>' && i+1 < n && atomic[i+1] == '>':
			sep = ">>"
			i += 2
		case i < n && (atomic[i] == '>' || atomic[i] == '<'):
			sep = string(atomic[i])
			i++
		default:
			sep = ""
		}
		terms = append(terms, Terminal{Words: words, Sep: sep})
	}
	return terms
}

type rawPart struct {
	text string
	sep  string
}

// splitTop scans s left to right, skipping leading whitespace before each
// segment, and splits on the first byte in seps it encounters. It mirrors
// the reference tokenizer: a trailing separator with nothing after it does
// not produce an extra empty segment.
func splitTop(s string, seps string) []rawPart {
	var parts []rawPart
	n := len(s)
	i := 0
	for i < n {
		if unicode.IsSpace(rune(s[i])) {
			i++
			continue
		}
		start := i
		for i < n && !strings.ContainsRune(seps, rune(s[i])) {
			i++
		}
		text := s[start:i]
		sep := ""
		if i < n {
			sep = string(s[i])
			i++
		}
		parts = append(parts, rawPart{text: text, sep: sep})
	}
	return parts
}
