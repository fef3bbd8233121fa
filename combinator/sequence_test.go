package combinator

import (
	"reflect"
	"testing"
)

func TestSeq(t *testing.T) {
	greeting := Seq(
		String("Hello"),
		Regex(`([,.]) +`),
		String("World"),
		Regex(`[.,?!]`),
	)

	v, next, err := greeting.Parse(NewState("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	want := List{"Hello", ",", "World", "!"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("value = %v, want %v", v, want)
	}
	if !next.AtEnd() {
		t.Errorf("offset = %d, input not fully consumed", next.Pos())
	}
}

func TestSeqAllOrNothing(t *testing.T) {
	// The first two children succeed and consume input before the
	// third fails; none of that consumption may be visible.
	p := Seq(String("ab"), String("cd"), String("XX"))
	st := NewState("abcdef")

	v, next, err := p.Parse(st)
	if err == nil {
		t.Fatalf("got value %v, want failure", v)
	}
	if next != st {
		t.Errorf("failure returned offset %d, want the starting state", next.Pos())
	}
}

func TestSeqOmitsSkipped(t *testing.T) {
	p := Seq(Float(), Skip(String(" ")), NonEmptyString())

	v, _, err := p.Parse(NewState("1.22 abc"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	want := List{1.22, "abc"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("value = %v, want %v", v, want)
	}
}

func TestSeqSplicesLists(t *testing.T) {
	p := Seq(Times(OneOf("ab"), 2), String("c"))

	v, _, err := p.Parse(NewState("abc"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	want := List{"a", "b", "c"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("value = %v, want %v", v, want)
	}
}

func TestOptimistic(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    List
		wantPos int
	}{
		{"all match", "abc", List{"a", "b", "c"}, 3},
		{"two match", "abX", List{"a", "b"}, 2},
		{"one matches", "aXX", List{"a"}, 1},
	}

	p := Optimistic(String("a"), String("b"), String("c"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, next, err := p.Parse(NewState(tt.input))
			if err != nil {
				t.Fatalf("unexpected failure: %s", err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Errorf("value = %v, want %v", v, tt.want)
			}
			if next.Pos() != tt.wantPos {
				t.Errorf("offset = %d, want %d", next.Pos(), tt.wantPos)
			}
		})
	}
}

func TestOptimisticNothingMatches(t *testing.T) {
	p := Optimistic(String("a"), String("b"))
	st := NewState("XYZ")

	v, next, err := p.Parse(st)
	if err == nil {
		t.Fatalf("got value %v, want failure when no child matches", v)
	}
	if next != st {
		t.Errorf("failure returned offset %d, want the starting state", next.Pos())
	}
}

func TestOptimisticFailedChildConsumesNothing(t *testing.T) {
	// The failing child is atomic itself, so the state stops exactly
	// after the last fully matched child.
	p := Optimistic(String("ab"), Seq(String("c"), String("d")))

	v, next, err := p.Parse(NewState("abcX"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if !reflect.DeepEqual(v, List{"ab"}) {
		t.Errorf("value = %v, want %v", v, List{"ab"})
	}
	if next.Pos() != 2 {
		t.Errorf("offset = %d, want 2", next.Pos())
	}
}
