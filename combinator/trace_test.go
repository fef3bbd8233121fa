package combinator

import "testing"

func TestTraceIsTransparent(t *testing.T) {
	p := Seq(String("a"), String("b"))
	traced := Trace("ab", p)

	for _, input := range []string{"abc", "xyz"} {
		st := NewState(input)
		v1, s1, err1 := p.Parse(st)
		v2, s2, err2 := traced.Parse(st)
		if (err1 == nil) != (err2 == nil) || s1 != s2 {
			t.Errorf("%q: Trace changed the outcome", input)
			continue
		}
		if err1 == nil && len(v1.(List)) != len(v2.(List)) {
			t.Errorf("%q: Trace changed the value", input)
		}
	}
}
