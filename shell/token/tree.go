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

// Package token tokenizes and validates one shell input line into a three
// level parse tree: a Line owns CommandGroups split on ';'/'&', each
// CommandGroup owns Atomics split on '|', and each Atomic owns Terminals
// split on the redirection sigils '<', '>', '>>'. Each Terminal carries the
// whitespace-split argument words it governs (the first terminal's words are
// the command and its arguments; later terminals are redirection targets).
package token

// Terminal is one argument run bounded by redirection sigils (or the end of
// the atomic). Sep is the sigil that follows it: "", "<", ">", or ">>".
type Terminal struct {
	Words []string
	Sep   string
}

// Atomic is one pipeline stage: a sequence of terminals. Sep is the
// separator that follows it within the owning CommandGroup: "" or "|".
type Atomic struct {
	Terminals []Terminal
	Sep       string
}

// CommandGroup is one unit of sequential/background scheduling: a pipeline
// of atomics. Sep is the separator that follows it within the Line: "",
// ";", or "&".
type CommandGroup struct {
	Atomics []Atomic
	Sep     string
}

// Line is the full parse tree for one input line.
type Line struct {
	Groups []CommandGroup
}

// Background reports whether this group's trailing separator schedules it
// to run without waiting for completion.
func (g CommandGroup) Background() bool {
	return g.Sep == "&"
}

// Args returns the first terminal's words, the command name and its
// arguments, or nil if the atomic has no terminals.
func (a Atomic) Args() []string {
	if len(a.Terminals) == 0 {
		return nil
	}
	return a.Terminals[0].Words
}

// Redirections returns every terminal past the first one, in order: these
// carry redirection targets rather than command arguments. Each returned
// copy's Sep is the sigil that introduced that target ("<", ">" or ">>"),
// taken from the terminal before it.
func (a Atomic) Redirections() []Terminal {
	if len(a.Terminals) <= 1 {
		return nil
	}
	out := make([]Terminal, 0, len(a.Terminals)-1)
	for i := 1; i < len(a.Terminals); i++ {
		out = append(out, Terminal{Words: a.Terminals[i].Words, Sep: a.Terminals[i-1].Sep})
	}
	return out
}
