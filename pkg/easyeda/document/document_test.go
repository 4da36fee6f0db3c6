package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schematicJSON = `{
  "editorVersion": "6.5.22",
  "schematics": [
    {
      "title": "Amp",
      "dataStr": {
        "head": {"docType": "1", "uuid": "3f0c2a"},
        "canvas": "CA~1000~1000",
        "shape": ["N~400~300~0~#000080~OUT~gge5~start~402~298~Times New Roman~", "W~1 2 3 4~#008800~1~0~none~gge6~0"]
      }
    }
  ]
}`

const pcbJSON = `{"head": {"docType": "3"}, "canvas": "CA~1000", "shape": ["TRACK~1~1~GND~0 0 10 0~gge1~0"], "layers": ["1~TopLayer"]}`

func TestParseSchematic(t *testing.T) {
	sch, err := ParseSchematic([]byte(schematicJSON))
	require.NoError(t, err)

	sheets := sch.Sheets()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Amp", sheets[0].Title())
	assert.Equal(t, "3f0c2a", sheets[0].UUID())

	shapes, err := sheets[0].Shapes()
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.True(t, strings.HasPrefix(shapes[0], "N~"))
}

func TestParseSchematicErrors(t *testing.T) {
	_, err := ParseSchematic([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = ParseSchematic([]byte(`{"shape": []}`))
	assert.ErrorContains(t, err, "schematics")

	_, err = ParseSchematic([]byte(`{`))
	assert.Error(t, err)
}

func TestSheetCloneIsDeep(t *testing.T) {
	sch, err := ParseSchematic([]byte(schematicJSON))
	require.NoError(t, err)
	orig := sch.Sheets()[0]

	clone, err := orig.Clone()
	require.NoError(t, err)
	clone.SetTitle("Amp_1")
	clone.SetUUID("beef")
	clone.SetShapes([]string{"X"})

	assert.Equal(t, "Amp", orig.Title())
	assert.Equal(t, "3f0c2a", orig.UUID())
	shapes, _ := orig.Shapes()
	assert.Len(t, shapes, 2)

	sch.AppendSheet(clone)
	require.Len(t, sch.Sheets(), 2)
	assert.Equal(t, "Amp_1", sch.Sheets()[1].Title())
	assert.Equal(t, "beef", sch.Sheets()[1].UUID())
}

func TestSetUUIDCreatesHead(t *testing.T) {
	sh := &Sheet{node: map[string]any{}}
	sh.SetUUID("abc")
	assert.Equal(t, "abc", sh.UUID())

	shapes, err := sh.Shapes()
	require.NoError(t, err)
	assert.Empty(t, shapes)
}

func TestShapesRejectsNonStrings(t *testing.T) {
	pcb, err := ParsePCB([]byte(`{"shape": ["A", 3]}`))
	require.NoError(t, err)
	_, err = pcb.Shapes()
	assert.ErrorContains(t, err, "shape[1]")
}

func TestPCBSaveLoad(t *testing.T) {
	pcb, err := ParsePCB([]byte(pcbJSON))
	require.NoError(t, err)
	pcb.AppendShapes("VIA~10~20~2~GND~1~gge2~0", "HOLE~1~2~3~gge3~0")

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, pcb.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    ", "saved documents are indented")

	loaded, err := LoadPCB(path)
	require.NoError(t, err)
	shapes, err := loaded.Shapes()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"TRACK~1~1~GND~0 0 10 0~gge1~0",
		"VIA~10~20~2~GND~1~gge2~0",
		"HOLE~1~2~3~gge3~0",
	}, shapes)
	assert.Equal(t, "3", loaded.root["head"].(map[string]any)["docType"], "unknown fields survive")
}

func TestSchematicSaveLoad(t *testing.T) {
	sch := NewSchematic()
	sch.AppendSheet(NewSheet("Main", []string{"N~1~2~0~#000~VCC~gge9"}))

	path := filepath.Join(t.TempDir(), "sch.json")
	require.NoError(t, sch.Save(path))

	loaded, err := LoadSchematic(path)
	require.NoError(t, err)
	require.Len(t, loaded.Sheets(), 1)
	assert.Equal(t, "Main", loaded.Sheets()[0].Title())

	_, err = LoadSchematic(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMarshalCompact(t *testing.T) {
	v, err := Unmarshal(`{"b": [1, "x<y"], "a": {"c": 2.5}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"c":2.5},"b":[1,"x<y"]}`, MarshalCompact(v))

	_, err = Unmarshal(`{"a":`)
	assert.Error(t, err)
}
