package vuln

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = ID{}
	_ encoding.TextUnmarshaler = (*ID)(nil)
	_ yaml.Marshaler           = ID{}
	_ yaml.Unmarshaler         = (*ID)(nil)
)

// MarshalText implements encoding.TextMarshaler. An ID is encoded as its
// original text.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, applying the same
// validation as ParseID.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.raw, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(v *yaml.Node) error {
	if v.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected an advisory ID string, got YAML node kind %d at line %d", v.Kind, v.Line)
	}

	return id.UnmarshalText([]byte(v.Value))
}
