package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
)

const (
	partShape      = "LIB~400~300~package~0~0~ggeA#@$T~P~395~290~0~#000080~Arial~~~~~comment~R1~1~start~ggeAt~0#@$P~show~0~1~380~300~180~ggeAp^^380~300^^M 380 300 h 5~#880000^^1~388~304~0~PIN~start^^1~376~299~0~1~end"
	footprintShape = "LIB~4000~3000~package~0~~ggeA#@$TEXT~P~4000~2990~0.8~0~0~3~~4.5~R1~M 4001 2991~~ggeAtx"
	trackShape     = "TRACK~1~1~R1_1~4000 3000 4100 3000~ggeT~0"
)

// writeProject lays out a one-channel project in a temp dir and returns the
// project file path.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	sch := document.NewSchematic()
	sch.AppendSheet(document.NewSheet("Amp", []string{partShape}))
	require.NoError(t, sch.Save(filepath.Join(dir, "amp.json")))

	pcb := document.NewPCB()
	pcb.AppendShapes(footprintShape, trackShape)
	require.NoError(t, pcb.Save(filepath.Join(dir, "amp_pcb.json")))

	require.NoError(t, document.NewPCB().Save(filepath.Join(dir, "main_pcb.json")))

	project := `
main_pcb: main_pcb.json
out_sch: out/sch.json
out_pcb: out/pcb.json
sources:
  - sch: amp.json
    pcb: amp_pcb.json
    channels:
      - {id: "1", x: 0, y: 0}
      - {id: "2", x: 500, y: 0}
`
	path := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(project), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flags are package globals
	projectFile, parallel, strict, dumpOutput, verbose = "project.yaml", 0, false, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMergeCommand(t *testing.T) {
	path := writeProject(t)
	dir := filepath.Dir(path)

	out, err := execute(t, "merge", "-c", path, "--parallel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Merged 2 channel instances")
	assert.Contains(t, out, "amp/1 at (0, 0): 1 components")
	assert.Contains(t, out, "amp/2 at (500, 0)")

	sch, err := document.LoadSchematic(filepath.Join(dir, "out", "sch.json"))
	require.NoError(t, err)
	sheets := sch.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Amp_1", sheets[0].Title())
	assert.Equal(t, "Amp_2", sheets[1].Title())

	pcb, err := document.LoadPCB(filepath.Join(dir, "out", "pcb.json"))
	require.NoError(t, err)
	shapes, err := pcb.Shapes()
	require.NoError(t, err)
	require.Len(t, shapes, 4)
	assert.Equal(t, "TRACK~1~1~R1_1_1~4000 3000 4100 3000~ggeT_1~0", shapes[1])
	assert.Equal(t, "TRACK~1~1~R1_2_1~4500 3000 4600 3000~ggeT_2~0", shapes[3])
}

func TestMergeCommandMissingProject(t *testing.T) {
	_, err := execute(t, "merge", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDumpCommand(t *testing.T) {
	dir := filepath.Dir(writeProject(t))

	out, err := execute(t, "dump", filepath.Join(dir, "amp.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Sheet 0: Amp")
	assert.Contains(t, out, "Shape 0")
	assert.Contains(t, out, "12: R1")

	target := filepath.Join(dir, "pcb.txt")
	_, err = execute(t, "dump", filepath.Join(dir, "amp_pcb.json"), "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Shape 1")
	assert.Contains(t, string(data), "3: R1_1")
}

func TestInfoCommand(t *testing.T) {
	dir := filepath.Dir(writeProject(t))

	out, err := execute(t, "info", filepath.Join(dir, "amp_pcb.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Shapes: 2")
	assert.Contains(t, out, "LIB")
	assert.Contains(t, out, "TRACK")
	assert.Contains(t, out, "Extent: (4000, 2990) - (4100, 3000)")
}
