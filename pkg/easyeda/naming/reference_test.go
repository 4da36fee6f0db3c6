package naming

import (
	"errors"
	"testing"
)

func TestSplitReference(t *testing.T) {
	tests := []struct {
		input   string
		want    Reference
		wantErr bool
	}{
		{input: "R1", want: Reference{Base: "R", Part: "1"}},
		{input: "U1.3", want: Reference{Base: "U", Part: "1", Subpart: ".3"}},
		{input: "SW12", want: Reference{Base: "SW", Part: "12"}},
		{input: "u007.12", want: Reference{Base: "u", Part: "007", Subpart: ".12"}},
		{input: "J4.", want: Reference{Base: "J", Part: "4", Subpart: "."}},
		{input: "R", want: Reference{Base: "R"}, wantErr: true},
		{input: "1R", want: Reference{Base: "1R"}, wantErr: true},
		{input: "R1A", want: Reference{Base: "R1A"}, wantErr: true},
		{input: "R_1", want: Reference{Base: "R_1"}, wantErr: true},
		{input: "U1.2.3", want: Reference{Base: "U1.2.3"}, wantErr: true},
		{input: "", want: Reference{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SplitReference(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.input)
				}
				if !errors.Is(err, ErrBadReference) {
					t.Errorf("Expected ErrBadReference, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSplitReferenceInverse(t *testing.T) {
	for _, s := range []string{"R1", "C10", "U3.1", "IC22.14", "LED7"} {
		ref, err := SplitReference(s)
		if err != nil {
			t.Fatalf("SplitReference(%q) failed: %v", s, err)
		}
		if ref.Base+ref.Part+ref.Subpart != s {
			t.Errorf("Expected %q to re-join, got %q", s, ref.String())
		}
	}
}

func TestReferenceHasSubpart(t *testing.T) {
	ref, _ := SplitReference("U2.1")
	if !ref.HasSubpart() {
		t.Error("Expected U2.1 to have a subpart")
	}
	ref, _ = SplitReference("U2")
	if ref.HasSubpart() {
		t.Error("Expected U2 to have no subpart")
	}
}
