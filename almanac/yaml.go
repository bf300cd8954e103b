package almanac

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rangemap/remap"
)

// document is the YAML shape of an almanac:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - {dest: 50, source: 98, length: 2}
type document struct {
	Seeds []int64    `yaml:"seeds,flow"`
	Maps  []mapEntry `yaml:"maps"`
}

type mapEntry struct {
	From  string      `yaml:"from"`
	To    string      `yaml:"to"`
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Dest   int64 `yaml:"dest"`
	Source int64 `yaml:"source"`
	Length int64 `yaml:"length"`
}

// MarshalYAML implements yaml.Marshaler.
func (a Almanac) MarshalYAML() (interface{}, error) {
	doc := document{Seeds: a.Seeds, Maps: make([]mapEntry, 0, len(a.Stages))}
	for _, st := range a.Stages {
		m := mapEntry{From: st.From, To: st.To, Rules: make([]ruleEntry, 0, len(st.Rules))}
		for _, r := range st.Rules {
			m.Rules = append(m.Rules, ruleEntry{Dest: r.Source + r.Delta, Source: r.Source, Length: r.Length})
		}
		doc.Maps = append(doc.Maps, m)
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Maps are validated the same
// way as in Parse.
func (a *Almanac) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return err
	}
	out := Almanac{Seeds: doc.Seeds}
	for _, m := range doc.Maps {
		if m.From == "" || m.To == "" {
			return fmt.Errorf("%w: map %q to %q", ErrBadHeader, m.From, m.To)
		}
		rules := make([]remap.Rule, 0, len(m.Rules))
		for _, r := range m.Rules {
			rule, err := remap.NewValidRule(r.Dest, r.Source, r.Length)
			if err != nil {
				return fmt.Errorf("%w: %s%s%s: %w", ErrBadRule, m.From, nameSep, m.To, err)
			}
			rules = append(rules, rule)
		}
		st, err := remap.NewStage(m.From, m.To, rules...)
		if err != nil {
			return fmt.Errorf("%w: %s%s%s: %w", ErrBadRule, m.From, nameSep, m.To, err)
		}
		out.Stages = append(out.Stages, st)
	}
	*a = out
	return nil
}

// DecodeYAML reads an almanac YAML document from r.
func DecodeYAML(r io.Reader) (*Almanac, error) {
	var a Almanac
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("almanac: decode yaml: %w", err)
	}
	return &a, nil
}

// EncodeYAML writes a as a YAML document.
func (a *Almanac) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("almanac: encode yaml: %w", err)
	}
	return enc.Close()
}

// IsYAML reports whether path names a YAML file by extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads an almanac from path: YAML for .yaml/.yml, puzzle text for
// .txt or no extension. Other extensions return ErrUnknownFormat.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case IsYAML(path):
		return DecodeYAML(bytes.NewReader(data))
	case ext == ".txt" || ext == "":
		return Parse(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
