package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"optics-generator/internal/common"
)

// File is the root of a manifest.
type File struct {
	Version  string         `yaml:"version"`
	Packages StringOrArray  `yaml:"packages,omitempty"`
	Output   Output         `yaml:"output,omitempty"`
	Derive   DeriveOptions  `yaml:"derive,omitempty"`
	Requests []RequestEntry `yaml:"requests"`

	// Path is the file the manifest was loaded from; empty when parsed
	// from memory.
	Path string `yaml:"-"`
}

// Output configures where and how files are rendered.
type Output struct {
	Dir      string `yaml:"dir,omitempty"`
	Comments *bool  `yaml:"comments,omitempty"`
	Header   string `yaml:"header,omitempty"`
}

// DeriveOptions configures the derivation engine.
type DeriveOptions struct {
	Strict           bool  `yaml:"strict,omitempty"`
	ReportSkipped    bool  `yaml:"report_skipped,omitempty"`
	ReportDuplicates bool  `yaml:"report_duplicates,omitempty"`
	WarnEmpty        *bool `yaml:"warn_empty,omitempty"`
}

// RequestEntry asks for accessors of one type.
type RequestEntry struct {
	Type      string `yaml:"type"`
	Family    string `yaml:"family,omitempty"`
	Container string `yaml:"container,omitempty"`

	// Line is the line of the entry in the manifest.
	Line int `yaml:"-"`
}

// UnmarshalYAML records the line of the entry.
func (r *RequestEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: request must be a mapping, got %v", node.Line, node.Tag)
	}

	type plain RequestEntry

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*r = RequestEntry(p)
	r.Line = node.Line

	return nil
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
