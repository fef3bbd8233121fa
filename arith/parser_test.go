package arith

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "5"},
		{"x", "x"},
		{"x1", "x1"},
		{"1 + 2", "(1 + 2)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"2 ^ 3 * 4", "((2 ^ 3) * 4)"},
		{"a + b * c", "(a + (b * c))"},
		{"1 + 2 + 3", "(1 + (2 + 3))"},
		{"-2 * x", "(-2 * x)"},
		{" ( x + 1.5 ) / y ", "((x + 1.5) / y)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if e.String() != tt.want {
				t.Errorf("got %s, want %s", e, tt.want)
			}
		})
	}
}

func TestParseNodes(t *testing.T) {
	e, err := Parse("x + 2")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	b, ok := e.(BinOp)
	if !ok {
		t.Fatalf("got %T, want BinOp", e)
	}
	if b.Op != "+" {
		t.Errorf("op = %q, want +", b.Op)
	}
	if v, ok := b.Left.(Var); !ok || v != "x" {
		t.Errorf("left = %#v, want Var x", b.Left)
	}
	if n, ok := b.Right.(Num); !ok || n != 2 {
		t.Errorf("right = %#v, want Num 2", b.Right)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"+",
		"1 +",
		"(1 + 2",
		"1 2",
	}

	for _, input := range inputs {
		if e, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %s, want error", input, e)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		vars  map[string]float64
		want  float64
	}{
		{"1 + 2 * 3", nil, 7},
		{"(1 + 2) * 3", nil, 9},
		{"2 ^ 10", nil, 1024},
		{"10 / 4", nil, 2.5},
		{"x + y", map[string]float64{"x": 1, "y": 2}, 3},
		{"-3 + 3", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse: %s", err)
			}
			got, err := Eval(e, tt.vars)
			if err != nil {
				t.Fatalf("eval: %s", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	e, err := Parse("x + 1")
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if _, err := Eval(e, nil); err == nil {
		t.Error("eval with an unbound variable did not fail")
	}

	e, err = Parse("1 / 0")
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if _, err := Eval(e, nil); err == nil {
		t.Error("division by zero did not fail")
	}
}
