// Package document loads and saves EasyEDA schematic and PCB documents.
//
// Documents are kept as generic JSON trees so that every field the merger
// does not understand is written back untouched. Only the parts the merger
// rewrites (sheet titles, sheet uuids and shape lists) have accessors.
package document

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

var (
	schematicsPath = jp.MustParseString("$.schematics")
	shapePath      = jp.MustParseString("$.shape")
	sheetShapePath = jp.MustParseString("$.dataStr.shape")
	sheetUUIDPath  = jp.MustParseString("$.dataStr.head.uuid")
	sheetTitlePath = jp.MustParseString("$.title")
)

// writeOptions returns the options used for saved documents: 4-space indent,
// sorted keys and no HTML escaping.
func writeOptions(indent int) *ojg.Options {
	opts := ojg.DefaultOptions
	opts.Indent = indent
	opts.Sort = true
	opts.HTMLUnsafe = true
	return &opts
}

// MarshalCompact renders v as compact JSON with sorted keys. It is used for
// sub-documents embedded in shape fields.
func MarshalCompact(v any) string {
	return oj.JSON(v, writeOptions(0))
}

// Unmarshal parses JSON text into a generic tree
func Unmarshal(s string) (any, error) {
	v, err := oj.ParseString(s)
	if err != nil {
		return nil, fmt.Errorf("document: parse json: %w", err)
	}
	return v, nil
}

func parseObject(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("document: parse json: %w", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document: expected JSON object at top level, got %T", v)
	}
	return root, nil
}

func readObject(filename string) (map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	root, err := parseObject(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return root, nil
}

func marshalIndent(v any) []byte {
	return []byte(oj.JSON(v, writeOptions(4)))
}

func writeFile(filename string, v any) error {
	if err := os.WriteFile(filename, marshalIndent(v), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// stringList converts a JSON array of strings
func stringList(v any, what string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("document: %s is %T, expected array", what, v)
	}
	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("document: %s[%d] is %T, expected string", what, i, item)
		}
		result[i] = s
	}
	return result, nil
}

func anyList(items []string) []any {
	result := make([]any, len(items))
	for i, s := range items {
		result[i] = s
	}
	return result
}

// ensureMap returns m[key] as an object, creating it when absent
func ensureMap(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	child := make(map[string]any)
	m[key] = child
	return child
}
