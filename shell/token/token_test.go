package token

import "testing"

func TestTokenizeSimpleSequence(t *testing.T) {
	l := Tokenize("ls -l; echo Hello & pwd")
	if len(l.Groups) != 3 {
		t.Fatalf("want 3 groups, got %d", len(l.Groups))
	}
	if got := l.Groups[0].Atomics[0].Args(); len(got) != 2 || got[0] != "ls" || got[1] != "-l" {
		t.Fatalf("group 0 args = %v", got)
	}
	if l.Groups[0].Sep != ";" || l.Groups[1].Sep != "&" || l.Groups[2].Sep != "" {
		t.Fatalf("seps = %q %q %q", l.Groups[0].Sep, l.Groups[1].Sep, l.Groups[2].Sep)
	}
}

func TestTokenizePipelineAndRedirection(t *testing.T) {
	l := Tokenize("ls -l  >> name.txt | grep txt < name.txt | wc -l")
	if len(l.Groups) != 1 {
		t.Fatalf("want 1 group, got %d", len(l.Groups))
	}
	atomics := l.Groups[0].Atomics
	if len(atomics) != 3 {
		t.Fatalf("want 3 atomics, got %d", len(atomics))
	}
	first := atomics[0]
	if got := first.Args(); len(got) != 2 || got[0] != "ls" || got[1] != "-l" {
		t.Fatalf("first atomic args = %v", got)
	}
	redirs := first.Redirections()
	if len(redirs) != 1 || redirs[0].Sep != ">>" || len(redirs[0].Words) != 1 || redirs[0].Words[0] != "name.txt" {
		t.Fatalf("redirections = %+v", redirs)
	}
	if first.Sep != "|" || atomics[1].Sep != "|" || atomics[2].Sep != "" {
		t.Fatalf("atomic seps = %q %q %q", first.Sep, atomics[1].Sep, atomics[2].Sep)
	}
}

func TestValidateAcceptsWellFormedLine(t *testing.T) {
	l := Tokenize("ls -l; echo Hello & pwd")
	if err := Validate(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsTrailingPipe(t *testing.T) {
	l := Tokenize("ls -l |")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for trailing pipe")
	}
}

func TestValidateRejectsTrailingSemicolon(t *testing.T) {
	l := Tokenize("ls -l;")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for trailing semicolon")
	}
}

func TestValidateAcceptsTrailingBackground(t *testing.T) {
	l := Tokenize("ls -l &")
	if err := Validate(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsRedirectionWithoutFilename(t *testing.T) {
	l := Tokenize("echo hi >")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for dangling redirection")
	}
}

func TestValidateRejectsRedirectionWithoutCommand(t *testing.T) {
	l := Tokenize("> out.txt")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for redirection with no command")
	}
}

func TestValidateRejectsEmptyAtomicBetweenPipes(t *testing.T) {
	l := Tokenize("ls -l || wc -l")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for empty atomic between pipes")
	}
}

func TestValidateAcceptsAppendRedirection(t *testing.T) {
	l := Tokenize("ls -l >> name.txt | grep txt < name.txt | wc -l")
	if err := Validate(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsEmptyLine(t *testing.T) {
	l := Tokenize("   ")
	if err := Validate(l); err == nil {
		t.Fatalf("expected error for blank line")
	}
}
