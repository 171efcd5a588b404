// Package model describes the tabular model metadata that semantic
// analysis validates references against. A model is loaded once from a
// YAML snapshot and treated as read-only afterward; all name lookups are
// case-insensitive to match engine resolution rules.
package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Name     string `yaml:"name"`
	DataType string `yaml:"data_type,omitempty"`
}

// MeasureInfo describes one measure defined on a table.
type MeasureInfo struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression,omitempty"`
}

// TableInfo describes one table with its columns and measures.
type TableInfo struct {
	Name     string        `yaml:"name"`
	Columns  []ColumnInfo  `yaml:"columns,omitempty"`
	Measures []MeasureInfo `yaml:"measures,omitempty"`
}

// ModelInfo is the root of a model snapshot.
type ModelInfo struct {
	Name   string      `yaml:"name,omitempty"`
	Tables []TableInfo `yaml:"tables,omitempty"`
}

// Load reads a model snapshot from a YAML file.
func Load(path string) (*ModelInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a model snapshot from YAML bytes.
func Parse(data []byte) (*ModelInfo, error) {
	var m ModelInfo
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	return &m, nil
}

// Table returns the table with the given name, case-insensitive.
func (m *ModelInfo) Table(name string) (*TableInfo, bool) {
	for i := range m.Tables {
		if strings.EqualFold(m.Tables[i].Name, name) {
			return &m.Tables[i], true
		}
	}
	return nil, false
}

// Column returns the column with the given name, case-insensitive.
func (t *TableInfo) Column(name string) (*ColumnInfo, bool) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Measure returns the measure with the given name, case-insensitive.
func (t *TableInfo) Measure(name string) (*MeasureInfo, bool) {
	for i := range t.Measures {
		if strings.EqualFold(t.Measures[i].Name, name) {
			return &t.Measures[i], true
		}
	}
	return nil, false
}

// HasField reports whether the table has a column or measure with the
// given name.
func (t *TableInfo) HasField(name string) bool {
	if _, ok := t.Column(name); ok {
		return true
	}
	_, ok := t.Measure(name)
	return ok
}

// HasAnyField reports whether any table in the model has a column or
// measure with the given name. Used for unqualified references, which
// resolve against every table in scope.
func (m *ModelInfo) HasAnyField(name string) bool {
	for i := range m.Tables {
		if m.Tables[i].HasField(name) {
			return true
		}
	}
	return false
}
