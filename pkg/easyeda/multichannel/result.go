package multichannel

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/geom"
)

// Instance is one placed copy of a channel
type Instance struct {
	ID        string  // channel id used in names
	X, Y      float64 // PCB offset
	Increment int     // reference number shift when increments are enabled
}

// Source is a channel design and the instances to stamp out of it
type Source struct {
	Name      string
	Schematic *document.Schematic
	PCB       *document.PCB
	Instances []Instance
}

// Severity of a diagnostic
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Pass identifies which half of an instance produced a diagnostic
type Pass string

const (
	PassSchematic Pass = "schematic"
	PassPCB       Pass = "pcb"
)

// Diagnostic is a problem found in one shape. Shape is -1 for problems that
// are not tied to a single shape.
type Diagnostic struct {
	Severity Severity
	Pass     Pass
	Sheet    int
	Shape    int
	Message  string
	Dump     string // decoded shape listing, for structural errors
}

func (d Diagnostic) String() string {
	if d.Shape < 0 {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Pass, d.Message)
	}
	if d.Pass == PassSchematic {
		return fmt.Sprintf("%s: %s sheet %d shape %d: %s", d.Severity, d.Pass, d.Sheet, d.Shape, d.Message)
	}
	return fmt.Sprintf("%s: %s shape %d: %s", d.Severity, d.Pass, d.Shape, d.Message)
}

// Result is the output of one channel instance
type Result struct {
	Source   string
	Instance Instance

	Sheets    []*document.Sheet // translated schematic sheets
	PCBShapes []string          // translated PCB shapes

	Components  int      // schematic components renamed
	Nets        int      // schematic nets recorded
	Unmatched   []string // schematic component ids without a PCB footprint
	Bounds      geom.BoundingBox
	Diagnostics []Diagnostic
}

// Errors returns the number of error diagnostics
func (r *Result) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning diagnostics
func (r *Result) Warnings() int {
	return len(r.Diagnostics) - r.Errors()
}

// Report summarizes a merge. Results are in declaration order.
type Report struct {
	Results []*Result
}

// Unmatched returns the total number of unmatched schematic components
func (r *Report) Unmatched() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Unmatched)
	}
	return n
}

// Diagnostics returns the number of diagnostics over all instances
func (r *Report) Diagnostics() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Diagnostics)
	}
	return n
}
