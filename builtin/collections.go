package builtin

import (
	"strconv"
	"strings"

	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// registerCollections installs `set`, grounded in the teacher's
// std/arrays.go update helpers but reworked around Sol's `|`-path
// strings and immutable Dict/Array model (spec §3, §6).
func registerCollections(r *Registry) {
	r.register(&value.Builtin{Name: "set", MinArity: 3, MaxArity: 3, Invoke: builtinSet})
}

func builtinSet(rt value.Runtime, args []value.Value) (value.Value, error) {
	pathStr, ok := args[1].(*value.String)
	if !ok {
		return nil, solerr.New(solerr.TypeError, 0, "set expects its second argument to be a '|'-separated path string, got %s", args[1].Kind())
	}
	segments := strings.Split(pathStr.Value, "|")
	result, err := setPath(args[0], segments, args[2])
	if err != nil {
		return nil, err
	}
	return result, nil
}

// setPath walks segments into container, rebuilding every Dict/Array
// on the way down (spec §3's immutability invariant) and creating
// missing Dict keys as nested Dicts, but failing IndexError on an
// out-of-range Array position rather than extending it (spec §6).
func setPath(container value.Value, segments []string, val value.Value) (value.Value, *solerr.Error) {
	seg, rest := segments[0], segments[1:]

	switch c := container.(type) {
	case *value.Dict:
		if len(rest) == 0 {
			return c.Set(seg, val), nil
		}
		child, exists := c.Pairs[seg]
		if !exists {
			child = value.NewDict()
		}
		newChild, err := setPath(child, rest, val)
		if err != nil {
			return nil, err
		}
		return c.Set(seg, newChild), nil

	case *value.Array:
		idx, convErr := strconv.ParseInt(seg, 10, 64)
		if convErr != nil {
			return nil, solerr.New(solerr.IndexError, 0, "array path component %q is not a whole number", seg)
		}
		if idx < 1 || idx > int64(len(c.Elements)) {
			return nil, solerr.New(solerr.IndexError, 0, "array index %d out of range", idx)
		}
		newElems := make([]value.Value, len(c.Elements))
		copy(newElems, c.Elements)
		if len(rest) == 0 {
			newElems[idx-1] = val
		} else {
			newChild, err := setPath(newElems[idx-1], rest, val)
			if err != nil {
				return nil, err
			}
			newElems[idx-1] = newChild
		}
		return &value.Array{Elements: newElems}, nil

	default:
		return nil, solerr.New(solerr.TypeError, 0, "cannot set a path into a %s", container.Kind())
	}
}
