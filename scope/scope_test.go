package scope

import (
	"testing"

	"github.com/gradia-lang/gradia/value"
)

func TestGetSet(t *testing.T) {
	s := New()
	if _, ok := s.Get("x"); ok {
		t.Fatal("expected unbound lookup to fail")
	}
	s.Set("x", value.Symbol("hi"))
	v, ok := s.Get("x")
	if !ok || v.GetString() != "hi" {
		t.Fatalf("got (%v, %v), want (hi, true)", v, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Set("x", value.Symbol("original"))

	clone := s.Clone()
	clone.Set("x", value.Symbol("changed"))
	clone.Set("y", value.Symbol("new"))

	v, _ := s.Get("x")
	if v.GetString() != "original" {
		t.Fatalf("mutating the clone changed the original: got %q", v.GetString())
	}
	if _, ok := s.Get("y"); ok {
		t.Fatal("binding added to the clone leaked back to the original")
	}
}

var _ value.Scope = (*Scope)(nil)
