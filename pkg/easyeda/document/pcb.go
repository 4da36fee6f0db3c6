package document

import "fmt"

// PCB is an EasyEDA PCB document: {"shape": [shape, ...], ...}.
type PCB struct {
	root map[string]any
}

// NewPCB returns an empty PCB document
func NewPCB() *PCB {
	return &PCB{root: map[string]any{"shape": []any{}}}
}

// ParsePCB parses a PCB document
func ParsePCB(data []byte) (*PCB, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return newPCB(root)
}

// LoadPCB reads and parses a PCB file
func LoadPCB(filename string) (*PCB, error) {
	root, err := readObject(filename)
	if err != nil {
		return nil, err
	}
	pcb, err := newPCB(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return pcb, nil
}

func newPCB(root map[string]any) (*PCB, error) {
	if _, ok := shapePath.First(root).([]any); !ok {
		return nil, fmt.Errorf("not an EasyEDA PCB: missing 'shape' array")
	}
	return &PCB{root: root}, nil
}

// Shapes returns the shape strings in document order
func (p *PCB) Shapes() ([]string, error) {
	return stringList(shapePath.First(p.root), "shape")
}

// AppendShapes adds shapes at the end of the document
func (p *PCB) AppendShapes(shapes ...string) {
	items, _ := p.root["shape"].([]any)
	p.root["shape"] = append(items, anyList(shapes)...)
}

// Bytes renders the document as indented JSON
func (p *PCB) Bytes() []byte {
	return marshalIndent(p.root)
}

// Save writes the document to a file
func (p *PCB) Save(filename string) error {
	return writeFile(filename, p.root)
}
