package eval

import (
	"strings"

	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/parser"
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// evalInterpolated renders a double-quoted template (spec §4.5): each
// text fragment is copied verbatim, each slot is looked up and its
// value rendered in place. A slot whose base identifier is unbound is
// left exactly as written, braces included; a slot whose base IS
// bound but whose path fails (e.g. a missing Dict key) still raises
// the normal KeyError/IndexError, since that failure is not about the
// name being unbound.
func (ev *Evaluator) evalInterpolated(s *parser.InterpolatedString, env *environment.Environment) (value.Value, *solerr.Error) {
	var sb strings.Builder
	for _, frag := range s.Fragments {
		if frag.Slot == nil {
			sb.WriteString(frag.Text)
			continue
		}
		if !ev.isBound(frag.Slot.Base.Name, env) {
			sb.WriteByte('{')
			sb.WriteString(frag.Raw)
			sb.WriteByte('}')
			continue
		}
		v, err := ev.evalPath(frag.Slot, env)
		if err != nil {
			return nil, err
		}
		sb.WriteString(v.Render())
	}
	return &value.String{Value: sb.String()}, nil
}
