// Package shape decodes and encodes EasyEDA shape strings.
//
// Every primitive in an EasyEDA schematic or PCB document is stored as one
// flat string. Three literal delimiters split it into sub-records, each
// sub-record into field-groups and each field-group into plain string fields.
// There is no escaping: the delimiters never occur inside a field value, so
// decoding followed by encoding reproduces the input byte-for-byte.
package shape

import "strings"

// Default EasyEDA delimiters, outermost first
const (
	RecordSeparator = "#@$"
	GroupSeparator  = "^^"
	FieldSeparator  = "~"
)

// Shape is a decoded shape string: sub-records → field-groups → fields.
// Field meaning is positional; Shape[0][0][0] is always the type tag.
type Shape [][][]string

// Codec converts between shape strings and Shape values using three nested
// delimiters.
type Codec struct {
	seps [3]string
}

// DefaultCodec is shared by schematic and PCB documents
var DefaultCodec = NewCodec(RecordSeparator, GroupSeparator, FieldSeparator)

// NewCodec creates a codec with the given delimiters, outermost first.
func NewCodec(record, group, field string) Codec {
	return Codec{seps: [3]string{record, group, field}}
}

// Separators returns the delimiters, outermost first
func (c Codec) Separators() []string {
	return c.seps[:]
}

// Decode splits s by the record delimiter, then every piece by the group
// delimiter and finally by the field delimiter. Field counts are not checked.
func (c Codec) Decode(s string) Shape {
	records := strings.Split(s, c.seps[0])
	result := make(Shape, len(records))
	for i, rec := range records {
		groups := strings.Split(rec, c.seps[1])
		result[i] = make([][]string, len(groups))
		for j, grp := range groups {
			result[i][j] = strings.Split(grp, c.seps[2])
		}
	}
	return result
}

// Encode is the exact inverse of Decode.
func (c Codec) Encode(s Shape) string {
	records := make([]string, len(s))
	for i, rec := range s {
		groups := make([]string, len(rec))
		for j, grp := range rec {
			groups[j] = strings.Join(grp, c.seps[2])
		}
		records[i] = strings.Join(groups, c.seps[1])
	}
	return strings.Join(records, c.seps[0])
}

// Decode decodes s with DefaultCodec
func Decode(s string) Shape {
	return DefaultCodec.Decode(s)
}

// Encode encodes s with DefaultCodec
func Encode(s Shape) string {
	return DefaultCodec.Encode(s)
}
