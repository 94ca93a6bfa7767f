package label_test

import (
	"testing"

	"github.com/tanmay-deshpand3/geometry-solver/label"
)

func TestSequence(t *testing.T) {
	var a label.Allocator
	want := []string{"A", "B", "C"}
	for i, w := range want {
		got := a.Next()
		if got != w {
			t.Fatalf("label %d: got %q want %q", i, got, w)
		}
	}
	if a.Count() != 3 {
		t.Fatalf("count: got %d want 3", a.Count())
	}
}

func TestWrapToSuffix(t *testing.T) {
	var a label.Allocator
	for i := 0; i < 26; i++ {
		a.Next()
	}
	got := a.Next()
	if got != "A1" {
		t.Fatalf("got %q want A1", got)
	}
	for i := 0; i < 25; i++ {
		a.Next()
	}
	got = a.Next()
	if got != "A2" {
		t.Fatalf("got %q want A2", got)
	}
}

func TestResetRewindsCounter(t *testing.T) {
	var a label.Allocator
	a.Next()
	a.Next()
	a.Reset()
	got := a.Next()
	if got != "A" {
		t.Fatalf("label after reset: got %q want A", got)
	}
}
