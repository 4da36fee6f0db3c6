package naming

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrBadReference is returned when a designator does not match
// <letters><digits>[.<digits>].
var ErrBadReference = errors.New("naming: unrecognized reference")

// Reference is a component designator split into its parts.
// For example "U1.3" is Base "U", Part "1", Subpart ".3".
type Reference struct {
	Base    string `parser:"@Letters"`
	Part    string `parser:"@Digits"`
	Subpart string `parser:"@( Dot Digits? )?"`
}

// String re-joins the reference
func (r Reference) String() string {
	return r.Base + r.Part + r.Subpart
}

// HasSubpart reports whether the reference addresses one unit of a
// multi-unit part.
func (r Reference) HasSubpart() bool {
	return r.Subpart != ""
}

// referenceLexer tokenizes designators. Any other character fails lexing.
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Letters", Pattern: `[A-Za-z]+`},
	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Dot", Pattern: `\.`},
})

var referenceParser = participle.MustBuild[Reference](
	participle.Lexer(referenceLexer),
)

// SplitReference splits a designator into base, part and subpart.
// The whole input must match. On failure the entire string is returned as
// Base with empty Part and Subpart, together with an error wrapping
// ErrBadReference; callers treat this as a warning.
func SplitReference(s string) (Reference, error) {
	ref, err := referenceParser.ParseString("", s)
	if err != nil {
		return Reference{Base: s}, fmt.Errorf("%w %q: %v", ErrBadReference, s, err)
	}
	return *ref, nil
}
