package combinator

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pcomb.combinator")

type trace struct {
	name   string
	parser Parser
}

// Trace wraps p with debug logging of where it was applied and how it
// fared. It changes nothing about p's behavior; enable a commonlog
// backend with sufficient verbosity to see the output.
func Trace(name string, p Parser) Parser {
	return &trace{name: name, parser: p}
}

func (t *trace) Parse(st State) (Value, State, error) {
	v, next, err := t.parser.Parse(st)
	if err != nil {
		log.Debugf("%s: no match at offset %d: %s", t.name, st.Pos(), err)
		return nil, st, err
	}
	log.Debugf("%s: matched %d..%d: %v", t.name, st.Pos(), next.Pos(), v)
	return v, next, nil
}
