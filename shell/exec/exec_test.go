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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/builtin"
	"github.com/nabbar/rudex/shell/history"
	"github.com/nabbar/rudex/shell/job"
	"github.com/nabbar/rudex/shell/token"
)

func newTestExecutor(t *testing.T, dir string) (*Executor, *bytes.Buffer) {
	t.Helper()
	h, err := history.Open(dir)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	var out bytes.Buffer
	bc := &builtin.Context{
		StartDir: dir,
		OldDir:   dir,
		History:  h,
		Jobs:     job.NewRegistry(),
		Log:      rlog.New(&out, rlog.WarnLevel),
		Stdout:   &out,
		Stderr:   &out,
	}
	return &Executor{BCtx: bc, Jobs: bc.Jobs, Log: bc.Log}, &out
}

func TestIsBuiltinRecognisesRegisteredNames(t *testing.T) {
	line := token.Tokenize("hop /tmp")
	a := line.Groups[0].Atomics[0]
	if !isBuiltin(a) {
		t.Fatalf("expected hop to be recognised as a builtin")
	}

	line = token.Tokenize("ls -l")
	a = line.Groups[0].Atomics[0]
	if isBuiltin(a) {
		t.Fatalf("did not expect ls to be recognised as a builtin")
	}
}

func TestArgvForReExecsBuiltins(t *testing.T) {
	ex := &Executor{SelfPath: "/bin/rudex-shell"}
	line := token.Tokenize("hop /tmp")
	argv := ex.argvFor(line.Groups[0].Atomics[0])
	want := []string{"/bin/rudex-shell", builtin.InternalFlag, "hop", "/tmp"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestArgvForLeavesExternalCommandsAlone(t *testing.T) {
	ex := &Executor{}
	line := token.Tokenize("echo hi")
	argv := ex.argvFor(line.Groups[0].Atomics[0])
	if len(argv) != 2 || argv[0] != "echo" || argv[1] != "hi" {
		t.Fatalf("argv = %v, want [echo hi]", argv)
	}
}

func TestRunForegroundDirectBuiltinExecutesInProcess(t *testing.T) {
	dir := t.TempDir()
	ex, out := newTestExecutor(t, dir)

	target := filepath.Join(dir, "child")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	ex.BCtx.StartDir = dir

	line := token.Tokenize("hop " + target)
	if err := ex.RunGroup(line.Groups[0], "hop "+target); err != nil {
		t.Fatalf("RunGroup: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunForegroundExternalPipelineRedirectsOutput(t *testing.T) {
	dir := t.TempDir()
	ex, _ := newTestExecutor(t, dir)

	outFile := filepath.Join(dir, "out.txt")
	line := token.Tokenize("echo hello > " + outFile)
	if err := ex.RunGroup(line.Groups[0], "echo hello > "+outFile); err != nil {
		t.Fatalf("RunGroup: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("file content = %q, want %q", got, "hello\n")
	}
}

func TestRunForegroundPipelineBetweenTwoExternalCommands(t *testing.T) {
	dir := t.TempDir()
	ex, _ := newTestExecutor(t, dir)

	outFile := filepath.Join(dir, "out.txt")
	line := token.Tokenize("echo hello | cat > " + outFile)
	if err := ex.RunGroup(line.Groups[0], "echo hello | cat > "+outFile); err != nil {
		t.Fatalf("RunGroup: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("file content = %q, want %q", got, "hello\n")
	}
}

func TestRunBackgroundRegistersJobAndAnnounces(t *testing.T) {
	dir := t.TempDir()
	ex, out := newTestExecutor(t, dir)

	line := token.Tokenize("true &")
	if err := ex.RunGroup(line.Groups[0], "true &"); err != nil {
		t.Fatalf("RunGroup: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected background job announcement to be printed")
	}

	snap := ex.Jobs.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 job registered, got %d", len(snap))
	}
}

func TestOpenRedirectionsOpensExistingFileForInput(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(inFile, []byte("data\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	line := token.Tokenize("cat < " + inFile)
	a := line.Groups[0].Atomics[0]
	stdin, stdout, err := openRedirections(a)
	if err != nil {
		t.Fatalf("openRedirections: %v", err)
	}
	defer stdin.Close()
	if stdin == nil {
		t.Fatalf("expected non-nil stdin file")
	}
	if stdout != nil {
		t.Fatalf("expected nil stdout")
	}
}
