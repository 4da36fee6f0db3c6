// Package geom shifts EasyEDA coordinates and measures their extent.
package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Path token separators used by EasyEDA fields
const (
	SpaceSep = " "
	CommaSep = ","
)

// ArcMarker starts an SVG arc command whose next ArcParams tokens are
// radii, rotation and flags rather than a coordinate pair.
const (
	ArcMarker = "A"
	ArcParams = 5
)

// OffsetPath adds dx to every x token and dy to every y token of a
// sep-joined token sequence. Numeric tokens alternate x, y, x, ... in order;
// other tokens pass through without affecting the alternation. The tokens
// following an arc marker are copied unchanged.
func OffsetPath(s string, dx, dy float64, sep string) string {
	tokens := strings.Split(s, sep)
	walkPath(tokens, func(i int, v float64, isY bool) {
		if isY {
			tokens[i] = FormatCoord(v + dy)
		} else {
			tokens[i] = FormatCoord(v + dx)
		}
	})
	return strings.Join(tokens, sep)
}

// OffsetValue adds d to a single numeric field.
func OffsetValue(s string, d float64) (string, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s, fmt.Errorf("geom: coordinate %q is not a number", s)
	}
	return FormatCoord(v + d), nil
}

// FormatCoord renders a coordinate with the fewest digits that round-trip.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// walkPath calls fn for every coordinate token with its parsed value and
// whether it is a y coordinate.
func walkPath(tokens []string, fn func(i int, v float64, isY bool)) {
	isY := false
	skip := 0
	for i, tok := range tokens {
		switch {
		case tok == ArcMarker:
			skip = ArcParams
		case skip > 0:
			skip--
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			fn(i, v, isY)
			isY = !isY
		}
	}
}
