package shape

import (
	"fmt"
	"sort"
	"strings"
)

// Selector matches field-group 0 of a sub-record: field index → expected value.
type Selector map[int]string

// Type returns the shape's type tag, or "" for an empty shape.
func (s Shape) Type() string {
	v, _ := s.Field(0, 0, 0)
	return v
}

// Field returns a field by position. ok is false if any index is out of range.
func (s Shape) Field(sub, group, field int) (value string, ok bool) {
	if sub < 0 || sub >= len(s) {
		return "", false
	}
	if group < 0 || group >= len(s[sub]) {
		return "", false
	}
	if field < 0 || field >= len(s[sub][group]) {
		return "", false
	}
	return s[sub][group][field], true
}

// SetField stores a field by position and reports whether it existed.
func (s Shape) SetField(sub, group, field int, value string) bool {
	if _, ok := s.Field(sub, group, field); !ok {
		return false
	}
	s[sub][group][field] = value
	return true
}

// FindSub returns the index of the first sub-record whose field-group 0
// matches every selector entry, or -1.
func (s Shape) FindSub(sel Selector) int {
	keys := make([]int, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for i := range s {
		matched := true
		for _, k := range keys {
			v, ok := s.Field(i, 0, k)
			if !ok || v != sel[k] {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

// Dump renders the shape as an indented listing of every field, labelled with
// the shape index. Used for diagnostics.
func (s Shape) Dump(index int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape %d\n", index)
	for x, sub := range s {
		fmt.Fprintf(&b, "    Sub %d\n", x)
		for y, group := range sub {
			fmt.Fprintf(&b, "        Subsub %d\n", y)
			for z, field := range group {
				fmt.Fprintf(&b, "            %d: %s\n", z, field)
			}
		}
	}
	return b.String()
}
