package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pcomb/combinator"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(v any) error {
	text, err := e.MarshalText(v)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText(v any) ([]byte, error) {
	return json.MarshalIndent(normalize(v), "", "  ")
}

// normalize rewrites combinator values into types encoding/json
// renders naturally: a List becomes a plain slice and the None marker
// becomes null.
func normalize(v any) any {
	switch v := v.(type) {
	case combinator.List:
		out := make([]any, 0, len(v))
		for _, e := range v {
			out = append(out, normalize(e))
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, e := range v {
			out = append(out, normalize(e))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	default:
		if v == combinator.None {
			return nil
		}
		return v
	}
}
