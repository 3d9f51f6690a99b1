package smartai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RowFile is an offline export of smart_scripts rows.
type RowFile struct {
	Version int         `json:"version" yaml:"version"`
	Rows    []ScriptRow `json:"rows" yaml:"rows"`
}

// UnmarshalYAML reads a row keyed by smart_scripts column names.
func (r *ScriptRow) UnmarshalYAML(value *yaml.Node) error {
	var w rowWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*r = w.toRow()
	return nil
}

// MarshalYAML writes the row using smart_scripts column names.
func (r ScriptRow) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

// LoadRowsFile loads rows from a JSON or YAML export, chosen by extension.
func LoadRowsFile(path string) ([]ScriptRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows file: %w", err)
	}

	var rf RowFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("failed to parse rows YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("failed to parse rows JSON: %w", err)
		}
	}

	if rf.Version != 1 {
		return nil, fmt.Errorf("unsupported rows file version: %d", rf.Version)
	}

	SortRows(rf.Rows)
	return rf.Rows, nil
}
