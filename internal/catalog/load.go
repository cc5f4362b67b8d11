package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/festivals.json
var defaultCatalog []byte

// FormatForPath picks the encoding from the file extension; anything that
// is not .yaml/.yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and converts a catalog file.
func LoadFile(path string) (*Catalog, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data, FormatForPath(path))
}

// LoadDefault converts the catalog bundled with the binary.
func LoadDefault() (*Catalog, []Warning, error) {
	return Parse(defaultCatalog, FormatJSON)
}

// Parse decodes a catalog document. Only a document that cannot be decoded
// at all is an error; individual bad records become warnings.
func Parse(data []byte, format Format) (*Catalog, []Warning, error) {
	file, err := decode(data, format)
	if err != nil {
		return nil, nil, err
	}
	cat, warns := Convert(file)
	return cat, warns, nil
}

func decode(data []byte, format Format) (*CatalogFile, error) {
	var file CatalogFile

	switch format {
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}
		if len(doc.Content) == 0 {
			return &file, nil
		}
		root := doc.Content[0]
		if root.Kind == yaml.SequenceNode {
			if err := root.Decode(&file.Festivals); err != nil {
				return nil, fmt.Errorf("parsing catalog yaml: %w", err)
			}
			return &file, nil
		}
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}

	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &file.Festivals); err != nil {
				return nil, fmt.Errorf("parsing catalog json: %w", err)
			}
			return &file, nil
		}
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog json: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	return &file, nil
}
