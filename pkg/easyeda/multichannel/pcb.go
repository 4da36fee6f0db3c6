package multichannel

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/geom"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/naming"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// pcbShape returns a positioned, renamed copy of a channel PCB shape.
func (c *channel) pcbShape(idx int, raw string) string {
	s := c.m.codec.Decode(raw)

	var componentID string
	if s.Type() == TypeComponent {
		componentID = c.pcbComponent(idx, s)
	}

	for i, sub := range s {
		if len(sub) != 1 {
			c.fail(PassPCB, idx, s, "unsupported pcb shape structure: sub %d has %d field groups", i, len(sub))
		}
		c.pcbPrimitive(idx, s, sub[0], componentID)
	}
	return c.m.codec.Encode(s)
}

// pcbComponent renames a footprint and swaps in the unique id its schematic
// part received. It returns the footprint's (new) unique id.
func (c *channel) pcbComponent(idx int, s shape.Shape) string {
	label := ""
	if p := s.FindSub(pcbPrefixSelector); p < 0 {
		c.fail(PassPCB, idx, s, "prefix text of PCB component is not recognized")
	} else if prefix, ok := s.Field(p, 0, pcbPrefixField); !ok {
		c.fail(PassPCB, idx, s, "prefix text of PCB component has no reference field")
	} else {
		label = prefix
		ref, err := naming.SplitReference(prefix)
		if err != nil {
			c.warn(PassPCB, idx, "unable to split prefix %s: %v", prefix, err)
		}
		if ref.HasSubpart() {
			c.fail(PassPCB, idx, nil, "subpart cannot exist in PCB: %s", prefix)
		}
		s.SetField(p, 0, pcbPrefixField, c.m.tr.Reference(ref, c.inst.ID, c.inst.Increment))
		// drop the cached text strokes so EasyEDA redraws the new reference
		s.SetField(p, 0, pcbPrefixPaths, "")
	}

	gid, ok := s.Field(0, 0, componentIDField)
	if !ok {
		c.fail(PassPCB, idx, s, "PCB component has no unique id")
		return ""
	}
	newID, ok := c.res.ResolveComponent(gid)
	if !ok {
		c.warn(PassPCB, idx, "PCB component %s (id: %s) is not matched with any schematic component", label, gid)
		return gid
	}
	s.SetField(0, 0, componentIDField, newID)
	return newID
}

// pcbPrimitive offsets, renames and re-ids one sub-record according to its
// layout. componentID is the enclosing footprint's id, if any.
func (c *channel) pcbPrimitive(idx int, s shape.Shape, data []string, componentID string) {
	kind := data[0]
	layout, ok := pcbLayouts[kind]
	if !ok {
		c.fail(PassPCB, idx, s, "unsupported pcb subshape %s", kind)
		return
	}
	if len(data) < layout.minFields() {
		c.fail(PassPCB, idx, s, "pcb subshape %s has %d fields, expected at least %d", kind, len(data), layout.minFields())
		return
	}

	if len(layout.origin) == 2 {
		for i, d := range []float64{c.inst.X, c.inst.Y} {
			field := layout.origin[i]
			v, err := geom.OffsetValue(data[field], d)
			if err != nil {
				c.fail(PassPCB, idx, s, "%s field %d: %v", kind, field, err)
				continue
			}
			data[field] = v
		}
	}
	for _, p := range layout.paths {
		data[p.index] = geom.OffsetPath(data[p.index], c.inst.X, c.inst.Y, p.sep)
	}
	for _, field := range layout.nets {
		data[field] = c.pcbNet(idx, data[field])
	}
	for _, field := range layout.gids {
		data[field] = c.pcbGID(idx, data[field])
	}

	switch layout.embed {
	case embedCopperArea:
		if len(data) > layout.embedIdx && data[layout.embedIdx] != "" {
			data[layout.embedIdx] = c.copperAreaFill(idx, s, data[layout.embedIdx])
		}
	case embedSVGNode:
		data[layout.embedIdx] = c.svgNode(idx, s, data[layout.embedIdx], componentID)
	}
}

func (c *channel) pcbNet(idx int, name string) string {
	renamed, ok := c.res.ResolveNet(name)
	if !ok {
		c.warn(PassPCB, idx, "PCB net %s is not matched with any schematic net", renamed)
	}
	return renamed
}

// pcbGID gives a PCB-only unique id its channel suffix
func (c *channel) pcbGID(idx int, gid string) string {
	if !strings.HasPrefix(gid, gidPrefix) {
		c.warn(PassPCB, idx, "unexpected PCB unique id %q", gid)
	}
	return gid + "_" + c.inst.ID
}
