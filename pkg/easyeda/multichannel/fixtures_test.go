package multichannel

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/naming"
)

func fields(f ...string) string { return strings.Join(f, "~") }
func groups(g ...string) string { return strings.Join(g, "^^") }
func subs(s ...string) string { return strings.Join(s, "#@$") }

// schematic shapes

func schPart(gid, ref string, pins ...string) string {
	parts := []string{
		fields("LIB", "400", "300", "package`0805`", "0", "0", gid),
		fields("T", "P", "395", "290", "0", "#000080", "Arial", "", "", "", "", "comment", ref, "1", "start", gid+"t", "0"),
	}
	for i, pin := range pins {
		parts = append(parts, groups(
			fields("P", "show", "0", pin, "380", "300", "180", fmt.Sprintf("%sp%d", gid, i)),
			fields("380", "300"),
			fields("M 380 300 h 5", "#880000"),
			fields("1", "388", "304", "0", "PIN", "start"),
			fields("1", "376", "299", "0", pin, "end"),
		))
	}
	return subs(parts...)
}

func schNetLabel(name string) string {
	return fields("N", "400", "300", "0", "#000080", name, "ggeN"+name, "start")
}

func schNetFlag(kind, name string) string {
	return groups(
		fields("F", kind, "400", "300", "0", "ggeF"+name),
		fields("400", "300"),
		fields(name, "#000000"),
	)
}

const schWire = "W~1 2 3 4~#008800~1~0~none~ggeW~0"

// pcb shapes

func pcbFootprint(gid, ref string, extra ...string) string {
	parts := []string{
		fields("LIB", "4000", "3000", "package`0805`", "0", "", gid, "", "", "", "0"),
		fields("TEXT", "P", "4000", "2990", "0.8", "0", "0", "3", "", "4.5", ref, "M 3998 2988 L 4002 2988", "", gid+"tx"),
	}
	return subs(append(parts, extra...)...)
}

func pcbPad(net string) string {
	return fields("PAD", "RECT", "3990", "3000", "4", "4", "1", net, "2", "0",
		"3988 2998 3992 2998 3992 3002 3988 3002", "0", "ggePD", "0", "", "Y", "0", "0", "0", "3990,3000")
}

const pcbSVG = `SVGNODE~{"gId":"ggeSV","nodeName":"g","attrs":{"c_origin":"4000,3000","id":"ggeSV"},"childNodes":[{"gId":"ggeC1","nodeName":"polyline","attrs":{"points":"3990 2995 4010 2995","id":"ggeC1"}}]}`

func pcbTrack(net, gid string) string {
	return fields("TRACK", "1", "1", net, "4000 3000 4100 3000", gid, "0")
}

const (
	pcbVia        = "VIA~4100~3000~2.4~GND~0.6~ggeV~0"
	pcbHole       = "HOLE~50~60~1.5~ggeH~0"
	pcbCopperArea = `COPPERAREA~1~1~GND~M 0 0 L 10 0 L 10 10 Z~1~solid~ggeCA~spoke~none~[["M 0 0 L 10 0"],[]]~0~yes`
)

// documents

func channelSchematic(t *testing.T, title string, shapes ...string) *document.Schematic {
	t.Helper()
	sch := document.NewSchematic()
	sch.AppendSheet(document.NewSheet(title, shapes))
	return sch
}

func channelPCB(t *testing.T, shapes ...string) *document.PCB {
	t.Helper()
	pcb := document.NewPCB()
	pcb.AppendShapes(shapes...)
	return pcb
}

// sequentialIDs returns a concurrency-safe generator of predictable ids
func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s%03d", prefix, n.Add(1))
	}
}

func newTestMerger(t *testing.T, opts Options) (*Merger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	opts.Logger = zap.New(core)
	if opts.Style == 0 {
		opts.Style = naming.StyleSuffix
	}
	if opts.NewGID == nil {
		opts.NewGID = sequentialIDs("ggeNEW")
	}
	if opts.NewSheetUUID == nil {
		opts.NewSheetUUID = sequentialIDs("sheet")
	}
	m, err := NewMerger(opts)
	require.NoError(t, err)
	return m, logs
}
