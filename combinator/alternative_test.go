package combinator

import "testing"

func TestFirstTakesDeclarationOrder(t *testing.T) {
	// Both alternatives match a prefix of "abc"; declaration order
	// decides, not match length.
	p := First(String("a"), String("abc"))

	v, next, err := p.Parse(NewState("abc"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if v != "a" {
		t.Errorf("value = %v, want %q", v, "a")
	}
	if next.Pos() != 1 {
		t.Errorf("offset = %d, want 1", next.Pos())
	}
}

func TestFirstFallsThrough(t *testing.T) {
	p := First(String("x"), String("y"), String("ab"))

	v, next, err := p.Parse(NewState("abc"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if v != "ab" || next.Pos() != 2 {
		t.Errorf("got (%v, %d), want (%q, 2)", v, next.Pos(), "ab")
	}
}

func TestFirstAllFail(t *testing.T) {
	p := First(String("x"), String("y"))
	st := NewState("abc")

	v, next, err := p.Parse(st)
	if err == nil {
		t.Fatalf("got value %v, want failure", v)
	}
	if next != st {
		t.Errorf("failure returned offset %d, want the starting state", next.Pos())
	}
}

func TestFirstRetriesFromSameState(t *testing.T) {
	// The first alternative consumes input internally before failing;
	// the second must still see the original position.
	p := First(Seq(String("ab"), String("XX")), String("abc"))

	v, next, err := p.Parse(NewState("abcd"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if v != "abc" || next.Pos() != 3 {
		t.Errorf("got (%v, %d), want (%q, 3)", v, next.Pos(), "abc")
	}
}

func TestLongest(t *testing.T) {
	p := Longest(String("a"), String("abc"), String("ab"))

	v, next, err := p.Parse(NewState("abcd"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if v != "abc" || next.Pos() != 3 {
		t.Errorf("got (%v, %d), want (%q, 3)", v, next.Pos(), "abc")
	}
}

func TestLongestTieKeepsEarlier(t *testing.T) {
	p := Longest(Map(String("ab"), func(Value) Value { return 1 }),
		Map(String("ab"), func(Value) Value { return 2 }))

	v, _, err := p.Parse(NewState("ab"))
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if v != 1 {
		t.Errorf("value = %v, want the earlier alternative", v)
	}
}
