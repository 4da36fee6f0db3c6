package multichannel

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/geom"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// PCBBounds returns the extent of the origins and paths of PCB shapes.
// Embedded sub-documents and malformed fields are ignored.
func PCBBounds(shapes []string) geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, raw := range shapes {
		for _, sub := range shape.Decode(raw) {
			bb.ExpandBox(primitiveBounds(sub[0]))
		}
	}
	return bb
}

func primitiveBounds(data []string) geom.BoundingBox {
	bb := geom.NewBoundingBox()
	layout, ok := pcbLayouts[data[0]]
	if !ok || len(data) < layout.minFields() {
		return bb
	}
	if len(layout.origin) == 2 {
		x, errX := strconv.ParseFloat(data[layout.origin[0]], 64)
		y, errY := strconv.ParseFloat(data[layout.origin[1]], 64)
		if errX == nil && errY == nil {
			bb.Expand(geom.Position{X: x, Y: y})
		}
	}
	for _, p := range layout.paths {
		bb.ExpandBox(geom.PathBounds(data[p.index], p.sep))
	}
	return bb
}

// CountTypes returns how many shapes of each type tag a list holds
func CountTypes(shapes []string) map[string]int {
	counts := make(map[string]int)
	for _, raw := range shapes {
		counts[shape.Decode(raw).Type()]++
	}
	return counts
}
