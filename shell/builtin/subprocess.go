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

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/history"
	"github.com/nabbar/rudex/shell/job"
)

// InternalFlag is the hidden flag cmd/rudex-shell recognises to re-enter
// itself as a one-shot built-in process: a builtin that is one stage of a
// pipeline or the body of a background job needs its own process to hold a
// pipe end and a process-group membership, exactly as the reference
// shell's forked child did. Because that child is a separate address
// space, any state it mutates (hop's chdir, log's history) is already
// local to it and never flows back to the parent shell, matching fork
// semantics exactly instead of working around them.
const InternalFlag = "--internal-builtin"

// RunSubprocess executes one built-in as a subprocess's entire program:
// it is what cmd/rudex-shell's main does when invoked with InternalFlag.
// startDir/oldDir seed a throwaway Context. The history store is loaded
// from startDir's log file, and any change a builtin makes to it (a "log
// purge") is written back to that file; the job registry starts empty.
func RunSubprocess(startDir, oldDir string, args []string) int {
	h, _ := history.Open(startDir)
	c := &Context{
		StartDir: startDir,
		OldDir:   oldDir,
		History:  h,
		Jobs:     job.NewRegistry(),
		Log:      rlog.New(os.Stderr, rlog.WarnLevel),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
	if len(args) == 0 || !Names[args[0]] {
		return 127
	}
	if err := Dispatch(c, args); err != nil {
		if ex, ok := err.(*ErrExit); ok {
			return ex.Status
		}
		return 1
	}
	return 0
}
