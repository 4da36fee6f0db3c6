package multichannel

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/geom"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// copperAreaFill offsets the cached fill of a copper area: a JSON array whose
// first element lists the fill outlines as SVG paths.
func (c *channel) copperAreaFill(idx int, s shape.Shape, raw string) string {
	v, err := document.Unmarshal(raw)
	if err != nil {
		c.fail(PassPCB, idx, s, "copper area fill data: %v", err)
		return raw
	}
	fill, ok := v.([]any)
	if !ok || len(fill) == 0 {
		c.fail(PassPCB, idx, s, "copper area fill data is %T, expected a non-empty array", v)
		return raw
	}
	outlines, ok := fill[0].([]any)
	if !ok {
		c.fail(PassPCB, idx, s, "copper area fill outlines are %T, expected an array", fill[0])
		return raw
	}
	for i, o := range outlines {
		if path, ok := o.(string); ok {
			outlines[i] = geom.OffsetPath(path, c.inst.X, c.inst.Y, geom.SpaceSep)
		}
	}
	return document.MarshalCompact(fill)
}

// svgNode rewrites a footprint outline node tree: the root and its children
// are re-id'd after the footprint and their coordinates offset.
func (c *channel) svgNode(idx int, s shape.Shape, raw string, componentID string) string {
	v, err := document.Unmarshal(raw)
	if err != nil {
		c.fail(PassPCB, idx, s, "svg node data: %v", err)
		return raw
	}
	node, ok := v.(map[string]any)
	if !ok {
		c.fail(PassPCB, idx, s, "svg node data is %T, expected an object", v)
		return raw
	}

	var svgID string
	if componentID != "" {
		svgID = componentID + "_outline"
	} else {
		// a free-standing node has no footprint to name it after
		gid, _ := node["gId"].(string)
		svgID = c.pcbGID(idx, gid)
	}
	node["gId"] = svgID
	attrs := childMap(node, "attrs")
	attrs["id"] = svgID
	if origin, ok := attrs["c_origin"].(string); ok {
		attrs["c_origin"] = geom.OffsetPath(origin, c.inst.X, c.inst.Y, geom.CommaSep)
	}

	children, _ := node["childNodes"].([]any)
	for i, ch := range children {
		child, ok := ch.(map[string]any)
		if !ok {
			c.warn(PassPCB, idx, "svg child node %d is %T, expected an object", i, ch)
			continue
		}
		childID := fmt.Sprintf("%s_line%d", svgID, i)
		child["gId"] = childID
		childAttrs := childMap(child, "attrs")
		childAttrs["id"] = childID
		if points, ok := childAttrs["points"].(string); ok {
			childAttrs["points"] = geom.OffsetPath(points, c.inst.X, c.inst.Y, geom.SpaceSep)
		}
	}
	return document.MarshalCompact(node)
}

func childMap(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	child := make(map[string]any)
	m[key] = child
	return child
}
