package cliapp

import (
	"bytes"
	"strings"
	"testing"
)

func TestOneLinerPrintsToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-l", `(print (+ 1 2))`}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr=%q", code, stderr.String())
	}
	if stdout.String() != "3" {
		t.Fatalf("stdout = %q, want 3", stdout.String())
	}
}

func TestOneLinerReportsEvalError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-l", `(sq 5)`}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Syntax Error!") {
		t.Fatalf("stderr = %q, want a Syntax Error for an unbound non-function head", stderr.String())
	}
}

func TestMissingScriptFileReportsError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"/no/such/gradia/script.gr"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Fatal("expected an error message for a missing script file")
	}
}
