package multichannel

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/naming"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// schematicSheet returns a renamed copy of a channel sheet and records the
// renames in the channel resolver.
func (c *channel) schematicSheet(idx int, src *document.Sheet) (*document.Sheet, error) {
	c.sheet = idx

	sh, err := src.Clone()
	if err != nil {
		return nil, err
	}
	sh.SetUUID(c.m.opts.NewSheetUUID())
	sh.SetTitle(c.m.tr.Title(sh.Title(), c.inst.ID))

	shapes, err := sh.Shapes()
	if err != nil {
		return nil, err
	}
	for i, s := range shapes {
		shapes[i] = c.schematicShape(i, s)
	}
	sh.SetShapes(shapes)
	return sh, nil
}

func (c *channel) schematicShape(idx int, raw string) string {
	s := c.m.codec.Decode(raw)

	switch s.Type() {
	case TypeComponent:
		c.schComponent(idx, s)
	case TypeNetLabel:
		c.schNetLabel(idx, s)
	case TypeNetFlag:
		c.schNetFlag(idx, s)
	default:
		// wires, junctions, drawings carry nothing channel specific
		return raw
	}
	return c.m.codec.Encode(s)
}

// schComponent gives a part its channel reference and a fresh unique id, and
// records the auto-generated names of the nets on its pins.
func (c *channel) schComponent(idx int, s shape.Shape) {
	p := s.FindSub(schPrefixSelector)
	if p < 0 {
		c.fail(PassSchematic, idx, s, "prefix text of schematic component is not recognized")
		return
	}
	prefixOld, ok := s.Field(p, 0, schPrefixField)
	if !ok {
		c.fail(PassSchematic, idx, s, "prefix text of schematic component has no reference field")
		return
	}
	oldID, ok := s.Field(0, 0, componentIDField)
	if !ok {
		c.fail(PassSchematic, idx, s, "schematic component has no unique id")
		return
	}

	// sheet frames are drawn as parts but are not components
	if strings.HasPrefix(oldID, frameLibPrefix) {
		return
	}

	ref, err := naming.SplitReference(prefixOld)
	if err != nil {
		c.warn(PassSchematic, idx, "unable to split prefix %s: %v", prefixOld, err)
	}
	prefixNew := c.m.tr.Reference(ref, c.inst.ID, c.inst.Increment)

	newID := c.m.opts.NewGID()
	if !c.res.RecordComponent(oldID, newID) {
		c.warn(PassSchematic, idx, "schematic component id %s appears more than once", oldID)
	}
	s.SetField(0, 0, componentIDField, newID)

	// Unnamed nets are called <reference>_<pin number> by EasyEDA
	for i := range s {
		if t, _ := s.Field(i, 0, 0); t != TypePin {
			continue
		}
		pin, ok := s.Field(i, schPinNumberGroup, schPinNumberField)
		if !ok {
			c.warn(PassSchematic, idx, "pin %d of %s has no pin number", i, prefixOld)
			continue
		}
		c.res.RecordNet(ref.Base+ref.Part+"_"+pin, prefixNew+"_"+pin)
	}

	s.SetField(p, 0, schPrefixField, prefixNew+ref.Subpart)
	c.result.Components++
}

func (c *channel) schNetLabel(idx int, s shape.Shape) {
	name, ok := s.Field(0, 0, schNetLabelField)
	if !ok {
		c.fail(PassSchematic, idx, s, "net label has no name field")
		return
	}
	renamed := c.m.tr.Net(name, c.inst.ID)
	c.res.RecordNet(name, renamed)
	s.SetField(0, 0, schNetLabelField, renamed)
}

// schNetFlag handles net ports, which are renamed like net labels, and
// power/ground flags, which are global by nature.
func (c *channel) schNetFlag(idx int, s shape.Shape) {
	name, ok := s.Field(0, schFlagNameGroup, 0)
	if !ok {
		c.fail(PassSchematic, idx, s, "net flag has no name field")
		return
	}
	if kind, _ := s.Field(0, 0, schFlagKindField); kind != netPortFlag {
		c.res.RecordNet(name, name)
		return
	}
	renamed := c.m.tr.Net(name, c.inst.ID)
	c.res.RecordNet(name, renamed)
	s.SetField(0, schFlagNameGroup, 0, renamed)
}
