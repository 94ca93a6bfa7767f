package expr_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/tanmay-deshpand3/geometry-solver/expr"
)

func TestPrecedenceAndAssociativity(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2^3^2", 512},
		{"2+3*4", 14},
		{"2*3^2", 18},
		{"10-2-3", 5},  // left-assoc minus
		{"2^(1+1)", 4}, // parens
	}
	for _, c := range cases {
		got, ok := expr.Evaluate(c.expr, nil)
		if !ok {
			t.Fatalf("%q: expected resolved value", c.expr)
		}
		chk.Scalar(t, c.expr, 1e-12, got, c.want)
	}
}

func TestValidate(t *testing.T) {
	if !expr.Validate("1 + 2 * (3 - x)") {
		t.Fatal("expected valid")
	}
	if expr.Validate("1 + ") {
		t.Fatal("expected invalid (trailing operator)")
	}
	if expr.Validate("1 @ 2") {
		t.Fatal("expected invalid (unknown character)")
	}
	if expr.Validate("(1 + 2") {
		t.Fatal("expected invalid (unbalanced parens)")
	}
}

func TestUnresolvedOnMissingVariable(t *testing.T) {
	_, ok := expr.Evaluate("x + 1", expr.Vars{})
	if ok {
		t.Fatal("expected unresolved")
	}
}

func TestUnresolvedOnUnsetVariable(t *testing.T) {
	vars := expr.Vars{"x": {IsSet: false}}
	_, ok := expr.Evaluate("x + 1", vars)
	if ok {
		t.Fatal("expected unresolved")
	}
}

func TestUnresolvedOnDivisionByZero(t *testing.T) {
	_, ok := expr.Evaluate("5 / 0", nil)
	if ok {
		t.Fatal("expected unresolved")
	}
}

func TestUnresolvedOnParseError(t *testing.T) {
	_, ok := expr.Evaluate("1 + + 2", nil)
	if ok {
		t.Fatal("expected unresolved")
	}
}

func TestResolvedWithKnownVariable(t *testing.T) {
	vars := expr.Vars{"x": {Num: 3, IsSet: true}, "y": {Num: 4, IsSet: true}}
	got, ok := expr.Evaluate("x*x + y*y", vars)
	if !ok {
		t.Fatal("expected resolved")
	}
	chk.Scalar(t, "x^2+y^2", 1e-12, got, 25)
}

func TestExtractVariableNamesOrderAndDuplicates(t *testing.T) {
	names := expr.ExtractVariableNames("a + b * a - c")
	want := []string{"a", "b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v want %v", names, want)
		}
	}
}

func TestExtractVariableNamesOnMalformedExpression(t *testing.T) {
	names := expr.ExtractVariableNames("a @ b")
	if names != nil {
		t.Fatalf("expected nil, got %v", names)
	}
}

func TestEvaluateNumberRoundTrip(t *testing.T) {
	for _, n := range []float64{0, 1, -3.5, 1e10} {
		got, ok := expr.EvaluateNumber(n)
		if !ok {
			t.Fatalf("expected ok for %v", n)
		}
		chk.Scalar(t, "roundtrip", 0, got, n)
	}
}
