package builtin

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/shell/history"
	"github.com/nabbar/rudex/shell/job"
)

func newTestContext(t *testing.T) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	start := t.TempDir()
	h, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	var out, errOut bytes.Buffer
	c := &Context{
		StartDir: start,
		History:  h,
		Jobs:     job.NewRegistry(),
		Log:      rlog.New(&errOut, rlog.WarnLevel),
		Stdout:   &out,
		Stderr:   &errOut,
	}
	return c, &out, &errOut
}

func TestDispatchRunsRegisteredBuiltin(t *testing.T) {
	c, out, _ := newTestContext(t)
	if err := Dispatch(c, []string{"hop"}); err != nil {
		t.Fatalf("Dispatch(hop): %v", err)
	}
	_ = out
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cwd != c.StartDir {
		t.Fatalf("cwd = %q, want %q", cwd, c.StartDir)
	}
}

func TestDispatchPanicsOnUnknownCommand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Dispatch to panic on an unknown command")
		}
	}()
	c, _, _ := newTestContext(t)
	_ = Dispatch(c, []string{"nonexistent"})
}

func TestHopWithNoArgsGoesToStartDir(t *testing.T) {
	c, _, _ := newTestContext(t)
	other := t.TempDir()
	if err := os.Chdir(other); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(c.StartDir)

	if err := Hop(c, nil); err != nil {
		t.Fatalf("Hop: %v", err)
	}
	cwd, _ := os.Getwd()
	if cwd != c.StartDir {
		t.Fatalf("cwd = %q, want StartDir %q", cwd, c.StartDir)
	}
}

func TestHopDashRestoresOldDir(t *testing.T) {
	c, _, _ := newTestContext(t)
	target := t.TempDir()
	if err := os.Chdir(c.StartDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	if err := Hop(c, []string{target}); err != nil {
		t.Fatalf("Hop(target): %v", err)
	}
	cwd, _ := os.Getwd()
	if cwd != target {
		t.Fatalf("cwd after hop %q = %q, want %q", target, cwd, target)
	}

	if err := Hop(c, []string{"-"}); err != nil {
		t.Fatalf("Hop(-): %v", err)
	}
	cwd, _ = os.Getwd()
	if cwd != c.StartDir {
		t.Fatalf("cwd after hop - = %q, want %q", cwd, c.StartDir)
	}
}

func TestHopUnknownDirectoryPrintsMessage(t *testing.T) {
	c, out, _ := newTestContext(t)
	missing := filepath.Join(c.StartDir, "does-not-exist")
	_ = Hop(c, []string{missing})
	if !strings.Contains(out.String(), "No such directory!") {
		t.Fatalf("output = %q, want it to mention No such directory!", out.String())
	}
}

func TestRevealListsEntriesSortedAndOnePerLineWithDashL(t *testing.T) {
	c, out, _ := newTestContext(t)
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := Reveal(c, []string{"-l", dir}); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != "a.txt" || lines[1] != "b.txt" {
		t.Fatalf("lines = %v, want [a.txt b.txt]", lines)
	}
}

func TestRevealDashAIncludesDotfiles(t *testing.T) {
	c, out, _ := newTestContext(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644); err != nil {
		t.Fatalf("write .hidden: %v", err)
	}

	if err := Reveal(c, []string{"-la", dir}); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if !strings.Contains(out.String(), ".hidden") {
		t.Fatalf("output = %q, want it to include .hidden", out.String())
	}
}

func TestRevealInvalidFlagReportsSyntaxError(t *testing.T) {
	c, _, errOut := newTestContext(t)
	if err := Reveal(c, []string{"-z"}); err != nil {
		t.Fatalf("Reveal must not return an error for bad syntax: %v", err)
	}
	if !strings.Contains(errOut.String(), "Invalid Syntax!") {
		t.Fatalf("stderr = %q, want it to mention Invalid Syntax!", errOut.String())
	}
}

func TestLogWithNoArgsPrintsHistory(t *testing.T) {
	c, out, _ := newTestContext(t)
	if err := c.History.Add("hop /tmp"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Log(c, nil); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if !strings.Contains(out.String(), "hop /tmp") {
		t.Fatalf("output = %q, want it to contain the recorded entry", out.String())
	}
}

func TestLogPurgeClearsHistory(t *testing.T) {
	c, _, _ := newTestContext(t)
	if err := c.History.Add("reveal"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Log(c, []string{"purge"}); err != nil {
		t.Fatalf("Log(purge): %v", err)
	}
	if c.History.Len() != 0 {
		t.Fatalf("History.Len() = %d, want 0 after purge", c.History.Len())
	}
}

func TestLogExecuteInvokesExecuteHook(t *testing.T) {
	c, _, _ := newTestContext(t)
	if err := c.History.Add("reveal -l"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var gotCmd string
	prev := Execute
	Execute = func(cmd string) error {
		gotCmd = cmd
		return nil
	}
	defer func() { Execute = prev }()

	if err := Log(c, []string{"execute", "1"}); err != nil {
		t.Fatalf("Log(execute 1): %v", err)
	}
	if gotCmd != "reveal -l" {
		t.Fatalf("Execute hook got %q, want %q", gotCmd, "reveal -l")
	}
}

func TestLogExecuteOutOfRangeReportsInvalidSyntax(t *testing.T) {
	c, _, errOut := newTestContext(t)
	if err := Log(c, []string{"execute", "5"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if !strings.Contains(errOut.String(), "Invalid Syntax!") {
		t.Fatalf("stderr = %q, want Invalid Syntax!", errOut.String())
	}
}

func TestActivitiesListsTrackedJobs(t *testing.T) {
	c, out, _ := newTestContext(t)
	c.Jobs.Add(12345, 12345, "sleep 100", job.Background)
	if err := Activities(c, nil); err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if !strings.Contains(out.String(), "sleep 100") || !strings.Contains(out.String(), "Running") {
		t.Fatalf("output = %q, want it to list the job as Running", out.String())
	}
}

func TestPingRejectsNonNumericPid(t *testing.T) {
	c, _, errOut := newTestContext(t)
	if err := Ping(c, []string{"abc", "9"}); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if !strings.Contains(errOut.String(), "Invalid syntax!") {
		t.Fatalf("stderr = %q, want Invalid syntax!", errOut.String())
	}
}

func TestPingDeliversSignalToRealProcess(t *testing.T) {
	c, out, _ := newTestContext(t)
	cmd := exec.Command("sleep", "5")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer cmd.Process.Kill()
	defer cmd.Wait()

	pid := cmd.Process.Pid
	if err := Ping(c, []string{strconv.Itoa(pid), "0"}); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if !strings.Contains(out.String(), "Sent signal 0") {
		t.Fatalf("output = %q, want it to confirm signal 0 was sent", out.String())
	}
}

func TestPingUnknownPidReportsNoSuchProcess(t *testing.T) {
	c, out, _ := newTestContext(t)
	if err := Ping(c, []string{"999999999", "9"}); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if !strings.Contains(out.String(), "No such process found") {
		t.Fatalf("output = %q, want No such process found", out.String())
	}
}

func TestBgResumesStoppedJobAndMarksBackground(t *testing.T) {
	c, out, _ := newTestContext(t)
	cmd := exec.Command("sleep", "5")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer cmd.Process.Kill()
	defer cmd.Wait()

	pid := cmd.Process.Pid
	c.Jobs.Add(pid, pid, "sleep 5", job.Stopped)

	if err := Bg(c, []string{strconv.Itoa(pid)}); err != nil {
		t.Fatalf("Bg: %v", err)
	}
	j, ok := c.Jobs.Find(pid)
	if !ok || j.Kind != job.Background {
		t.Fatalf("expected job to become Background, got %+v (found=%v)", j, ok)
	}
	if !strings.Contains(out.String(), "sleep 5 &") {
		t.Fatalf("output = %q, want it to echo the resumed command", out.String())
	}
}

func TestExitReturnsErrExit(t *testing.T) {
	c, _, _ := newTestContext(t)
	err := Exit(c, nil)
	var exitErr *ErrExit
	if err == nil {
		t.Fatalf("expected Exit to return a non-nil error")
	}
	if ee, ok := err.(*ErrExit); !ok {
		t.Fatalf("Exit returned %T, want *ErrExit", err)
	} else {
		exitErr = ee
	}
	if exitErr.Status != 0 {
		t.Fatalf("Status = %d, want 0", exitErr.Status)
	}
}
