package grammar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads grammar from file. JSON and YAML files (by extension) are
// decoded as Document, anything else is read as textual notation.
func Load(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	var g *Grammar
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		g, err = Decode(f)
	default:
		g, err = Parse(path, f, "")
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return g, nil
}
