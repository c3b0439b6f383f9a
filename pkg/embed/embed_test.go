package embed

import "testing"

func TestEvalReturnsCanonicalForm(t *testing.T) {
	sc := NewScope()
	got := Eval(sc, "(+ 1 2 3)")
	if got != "6" {
		t.Fatalf("got %q, want 6", got)
	}
}

func TestBindStdoutCapturesPrint(t *testing.T) {
	sc := NewScope()
	BindStdout(sc)

	if err := Run(sc, `(print "hello, " "world")`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Stdout(sc); got != "hello, world" {
		t.Fatalf("got %q, want %q", got, "hello, world")
	}
}

func TestBindStdoutAccumulatesAcrossRuns(t *testing.T) {
	sc := NewScope()
	BindStdout(sc)

	if err := Run(sc, `(print "a")`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Run(sc, `(print "b")`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Stdout(sc); got != "ab" {
		t.Fatalf("got %q, want ab", got)
	}
}

func TestStdoutWithoutBindReturnsEmpty(t *testing.T) {
	sc := NewScope()
	if got := Stdout(sc); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestRunPropagatesSyntaxErrors(t *testing.T) {
	sc := NewScope()
	if err := Run(sc, `(+ 1 "not-a-problem-but-unbalanced (`); err == nil {
		t.Fatal("expected a syntax error for an unterminated string")
	}
}
