package shape

import (
	"strings"
	"testing"
)

const (
	schLibShape = "LIB~400~300~package`0805`~~0~gge1a2b~~~#@$T~P~395~290~0~#000080~Arial~~~~~~comment~R1~1~start~gge77~0~pinpart#@$" +
		"P~show~0~1~380~300~180~gge3^^380~300^^M 380 300 h 5~#880000^^1~388~304~0~1~start~~^^1~376~299~0~1~end~~^^^^M 375 303 L 372 300 L 375 297"
	pcbTrackShape = "TRACK~1~1~GND~4000 3000 4100 3000~gge12~0"
)

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "single field", input: "TRACK"},
		{name: "pcb track", input: pcbTrackShape},
		{name: "schematic component", input: schLibShape},
		{name: "empty groups", input: "A^^^^B#@$#@$C"},
		{name: "trailing delimiters", input: "A~~#@$B^^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(Decode(tt.input))
			if got != tt.input {
				t.Errorf("Expected round trip %q, got %q", tt.input, got)
			}
		})
	}
}

func TestDecodeNesting(t *testing.T) {
	s := Decode("A~1~2^^x~y#@$B~3")

	if len(s) != 2 {
		t.Fatalf("Expected 2 sub-records, got %d", len(s))
	}
	if len(s[0]) != 2 {
		t.Fatalf("Expected 2 field-groups in sub 0, got %d", len(s[0]))
	}
	if got := strings.Join(s[0][0], ","); got != "A,1,2" {
		t.Errorf("Expected group fields A,1,2, got %s", got)
	}
	if got := strings.Join(s[0][1], ","); got != "x,y" {
		t.Errorf("Expected group fields x,y, got %s", got)
	}
	if s.Type() != "A" {
		t.Errorf("Expected type A, got %q", s.Type())
	}
}

func TestCustomCodec(t *testing.T) {
	c := NewCodec("|", ";", ",")
	s := c.Decode("a,b;c|d")
	if v, ok := s.Field(0, 1, 0); !ok || v != "c" {
		t.Fatalf("Expected field c, got %q (ok=%v)", v, ok)
	}
	s[1][0][0] = "e"
	if got := c.Encode(s); got != "a,b;c|e" {
		t.Errorf("Expected a,b;c|e, got %s", got)
	}
}

func TestEncodeAfterMutation(t *testing.T) {
	s := Decode(pcbTrackShape)
	if !s.SetField(0, 0, 3, "GND_1") {
		t.Fatal("SetField failed on existing field")
	}
	want := "TRACK~1~1~GND_1~4000 3000 4100 3000~gge12~0"
	if got := Encode(s); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if s.SetField(0, 0, 42, "x") {
		t.Error("SetField should fail out of range")
	}
}
