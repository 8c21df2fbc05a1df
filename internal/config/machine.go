package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"enigma-core/alphabet"
	"enigma-core/engine"
	"enigma-core/fault"
	"enigma-core/rotor"
	"enigma-core/wiring"

	"enigma/internal/catalog"
)

// Machine is the YAML form of a complete machine:
//
//	plugboard: "AB CD"
//	reflector: B
//	rotors:
//	  - name: I
//	  - wiring: EKMFLGDQVZNTOWYHXUSPAIBRCJ
//	    notches: R
//	positions: [0, 3]
type Machine struct {
	Plugboard string      `yaml:"plugboard"`
	Reflector string      `yaml:"reflector"`
	Rotors    []RotorSpec `yaml:"rotors"`
	Positions Positions   `yaml:"positions"`
}

// RotorSpec names a catalogue rotor or spells out its wiring. Notches are
// letters; "R" is rotation count 17.
type RotorSpec struct {
	Name    string `yaml:"name,omitempty"`
	Wiring  string `yaml:"wiring,omitempty"`
	Notches string `yaml:"notches,omitempty"`
}

// Positions accepts either a list of integers or a string of letters.
type Positions []int

func (p *Positions) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		idx, err := letterValues(n.Value, fault.Positions)
		if err != nil {
			return err
		}
		*p = idx
		return nil
	case yaml.SequenceNode:
		var out []int
		for _, item := range n.Content {
			var v int
			if err := item.Decode(&v); err != nil {
				return fault.New(fault.NonNumericCharacter, fault.Positions, "line %d: %q", item.Line, item.Value)
			}
			out = append(out, v)
		}
		*p = out
		return nil
	default:
		return fmt.Errorf("line %d: positions must be a list or a string of letters", n.Line)
	}
}

// letterValues turns "AB CD" into indices, ignoring white space.
func letterValues(s string, c fault.Component) ([]int, error) {
	var out []int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		i, ok := alphabet.Index(unicode.ToUpper(r))
		if !ok {
			return nil, fault.New(fault.InvalidIndex, c, "%q is not a letter A-Z", r)
		}
		out = append(out, i)
	}
	return out, nil
}

// LoadMachine reads a YAML machine description from path.
func LoadMachine(path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, &fault.Error{Kind: fault.ErrorOpeningConfigurationFile, Component: fault.Machine, Source: path, Slot: -1, Offset: -1, Err: err}
	}
	cfg, err := ParseMachine(data)
	if err != nil {
		return cfg, fault.WithSource(err, path)
	}
	return cfg, nil
}

// ParseMachine decodes YAML and converts it. Unknown keys are rejected.
func ParseMachine(data []byte) (engine.Config, error) {
	var m Machine
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return engine.Config{}, fmt.Errorf("machine: %w", err)
	}
	return m.Config()
}

// Config converts letters and catalogue names into an engine.Config. The
// result is not validated beyond what the conversion needs; engine.Build does
// that.
func (m Machine) Config() (engine.Config, error) {
	var cfg engine.Config

	vals, err := letterValues(m.Plugboard, fault.Plugboard)
	if err != nil {
		return cfg, err
	}
	if cfg.Plugboard, err = wiring.Pairs(vals, fault.Plugboard); err != nil {
		return cfg, err
	}

	if pairs, ok := catalog.Reflector(m.Reflector); ok {
		cfg.Reflector = pairs
	} else {
		vals, err := letterValues(m.Reflector, fault.Reflector)
		if err != nil {
			return cfg, err
		}
		if cfg.Reflector, err = wiring.Pairs(vals, fault.Reflector); err != nil {
			return cfg, err
		}
	}

	for slot, rs := range m.Rotors {
		def, err := rs.definition()
		if err != nil {
			return cfg, fault.WithSlot(err, slot)
		}
		cfg.Rotors = append(cfg.Rotors, def)
	}
	cfg.Positions = append([]int(nil), m.Positions...)
	return cfg, nil
}

func (rs RotorSpec) definition() (rotor.Definition, error) {
	if rs.Name != "" {
		if rs.Wiring != "" {
			return rotor.Definition{}, fault.New(fault.InvalidRotorMapping, fault.Rotor, "give either name or wiring, not both")
		}
		def, ok := catalog.Rotor(rs.Name)
		if !ok {
			return rotor.Definition{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
				"unknown rotor %q (known: %s)", rs.Name, strings.Join(catalog.RotorNames(), ", "))
		}
		if rs.Notches != "" {
			notches, err := letterValues(rs.Notches, fault.Rotor)
			if err != nil {
				return rotor.Definition{}, err
			}
			def.Notches = notches
		}
		return def, nil
	}
	w, err := letterValues(rs.Wiring, fault.Rotor)
	if err != nil {
		return rotor.Definition{}, err
	}
	n, err := letterValues(rs.Notches, fault.Rotor)
	if err != nil {
		return rotor.Definition{}, err
	}
	if len(w) != alphabet.Size {
		return rotor.Definition{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
			"wiring has %d letters, need %d", len(w), alphabet.Size)
	}
	return rotor.FromValues(append(w, n...))
}
