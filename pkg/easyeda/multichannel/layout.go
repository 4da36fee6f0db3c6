package multichannel

import (
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/geom"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// Shape type tags
const (
	TypeComponent   = "LIB"
	TypeNetLabel    = "N"
	TypeNetFlag     = "F"
	TypePin         = "P"
	TypeTrack       = "TRACK"
	TypeCopperArea  = "COPPERAREA"
	TypeSolidRegion = "SOLIDREGION"
	TypeArc         = "ARC"
	TypeText        = "TEXT"
	TypeVia         = "VIA"
	TypePad         = "PAD"
	TypeCircle      = "CIRCLE"
	TypeHole        = "HOLE"
	TypeSVGNode     = "SVGNODE"
)

// Schematic field positions
const (
	componentIDField = 6 // sub 0, group 0 of a LIB shape (both documents)

	schPrefixField    = 12 // group 0 of the reference text sub-record
	schPinNumberGroup = 4
	schPinNumberField = 4
	schNetLabelField  = 5
	schFlagKindField  = 1
	schFlagNameGroup  = 2

	pcbPrefixField = 10 // group 0 of the reference TEXT sub-record
	pcbPrefixPaths = 11 // cached stroke data of the reference text

	netPortFlag    = "part_netLabel_netPort"
	frameLibPrefix = "frame_lib"
	gidPrefix      = "gge"
)

var (
	schPrefixSelector = shape.Selector{0: "T", 1: "P"}
	pcbPrefixSelector = shape.Selector{0: TypeText, 1: "P"}
)

type embedKind int

const (
	embedNone embedKind = iota
	embedCopperArea
	embedSVGNode
)

// pathField is a field holding a sep-joined coordinate list
type pathField struct {
	index int
	sep   string
}

// pcbLayout describes where a PCB primitive keeps the data the merger
// rewrites. All indices refer to group 0 of the sub-record.
type pcbLayout struct {
	origin   []int // x, y absolute coordinate fields
	paths    []pathField
	nets     []int
	gids     []int
	embed    embedKind
	embedIdx int
}

var pcbLayouts = map[string]pcbLayout{
	TypeComponent:   {origin: []int{1, 2}},
	TypeTrack:       {paths: []pathField{{4, geom.SpaceSep}}, nets: []int{3}, gids: []int{5}},
	TypeCopperArea:  {paths: []pathField{{4, geom.SpaceSep}}, nets: []int{3}, gids: []int{7}, embed: embedCopperArea, embedIdx: 10},
	TypeSolidRegion: {paths: []pathField{{3, geom.SpaceSep}}, gids: []int{5}},
	TypeArc:         {paths: []pathField{{4, geom.SpaceSep}}, gids: []int{6}},
	TypeText:        {origin: []int{2, 3}, paths: []pathField{{11, geom.SpaceSep}}, gids: []int{13}},
	TypeVia:         {origin: []int{1, 2}, nets: []int{4}, gids: []int{6}},
	TypePad:         {origin: []int{2, 3}, paths: []pathField{{10, geom.SpaceSep}, {19, geom.CommaSep}}, nets: []int{7}, gids: []int{12}},
	TypeCircle:      {origin: []int{1, 2}, gids: []int{6}},
	TypeHole:        {origin: []int{1, 2}, gids: []int{4}},
	TypeSVGNode:     {embed: embedSVGNode, embedIdx: 1},
}

// minFields is the number of fields a primitive needs. The copper area fill
// data is optional.
func (l pcbLayout) minFields() int {
	n := 1
	grow := func(idx int) {
		if idx+1 > n {
			n = idx + 1
		}
	}
	for _, idx := range l.origin {
		grow(idx)
	}
	for _, p := range l.paths {
		grow(p.index)
	}
	for _, idx := range l.nets {
		grow(idx)
	}
	for _, idx := range l.gids {
		grow(idx)
	}
	if l.embed == embedSVGNode {
		grow(l.embedIdx)
	}
	return n
}
