package document

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Schematic is an EasyEDA schematic document: {"schematics": [sheet, ...]}.
type Schematic struct {
	root map[string]any
}

// Sheet is one schematic sheet
type Sheet struct {
	node map[string]any
}

// NewSchematic returns an empty schematic with no sheets
func NewSchematic() *Schematic {
	return &Schematic{root: map[string]any{"schematics": []any{}}}
}

// ParseSchematic parses a schematic document
func ParseSchematic(data []byte) (*Schematic, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return newSchematic(root)
}

// LoadSchematic reads and parses a schematic file
func LoadSchematic(filename string) (*Schematic, error) {
	root, err := readObject(filename)
	if err != nil {
		return nil, err
	}
	sch, err := newSchematic(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sch, nil
}

func newSchematic(root map[string]any) (*Schematic, error) {
	v := schematicsPath.First(root)
	if _, ok := v.([]any); !ok {
		return nil, fmt.Errorf("not an EasyEDA schematic: missing 'schematics' array")
	}
	return &Schematic{root: root}, nil
}

// Sheets returns the sheets in document order. Non-object entries are skipped.
func (s *Schematic) Sheets() []*Sheet {
	items, _ := s.root["schematics"].([]any)
	sheets := make([]*Sheet, 0, len(items))
	for _, item := range items {
		if node, ok := item.(map[string]any); ok {
			sheets = append(sheets, &Sheet{node: node})
		}
	}
	return sheets
}

// AppendSheet adds a sheet at the end of the document
func (s *Schematic) AppendSheet(sh *Sheet) {
	items, _ := s.root["schematics"].([]any)
	s.root["schematics"] = append(items, sh.node)
}

// Bytes renders the document as indented JSON
func (s *Schematic) Bytes() []byte {
	return marshalIndent(s.root)
}

// Save writes the document to a file
func (s *Schematic) Save(filename string) error {
	return writeFile(filename, s.root)
}

// NewSheet creates a sheet with the given title and shapes
func NewSheet(title string, shapes []string) *Sheet {
	return &Sheet{node: map[string]any{
		"title": title,
		"dataStr": map[string]any{
			"head":  map[string]any{},
			"shape": anyList(shapes),
		},
	}}
}

// Title returns the sheet title
func (sh *Sheet) Title() string {
	title, _ := sheetTitlePath.First(sh.node).(string)
	return title
}

// SetTitle replaces the sheet title
func (sh *Sheet) SetTitle(title string) {
	sh.node["title"] = title
}

// UUID returns dataStr.head.uuid
func (sh *Sheet) UUID() string {
	id, _ := sheetUUIDPath.First(sh.node).(string)
	return id
}

// SetUUID replaces dataStr.head.uuid
func (sh *Sheet) SetUUID(id string) {
	ensureMap(ensureMap(sh.node, "dataStr"), "head")["uuid"] = id
}

// Shapes returns the shape strings of the sheet
func (sh *Sheet) Shapes() ([]string, error) {
	return stringList(sheetShapePath.First(sh.node), "dataStr.shape")
}

// SetShapes replaces the shape list
func (sh *Sheet) SetShapes(shapes []string) {
	ensureMap(sh.node, "dataStr")["shape"] = anyList(shapes)
}

// Clone returns a deep copy of the sheet
func (sh *Sheet) Clone() (*Sheet, error) {
	v, err := oj.ParseString(oj.JSON(sh.node))
	if err != nil {
		return nil, fmt.Errorf("document: clone sheet: %w", err)
	}
	node, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document: clone sheet: got %T", v)
	}
	return &Sheet{node: node}, nil
}
