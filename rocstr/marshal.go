package rocstr

import (
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/juju/errors"
)

// MarshalText implements encoding.TextMarshaler.
func (s RocStr[B]) MarshalText() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, s.Len())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be valid
// UTF-8; it's truncated to the capacity if needed.
func (s *RocStr[B]) UnmarshalText(text []byte) error {
	v, err := FromBytes[B](text)
	if err != nil {
		return errors.Trace(err)
	}

	*s = v
	return nil
}

// MarshalJSON encodes s as a JSON string.
func (s RocStr[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string, truncating it to the capacity. A JSON
// null leaves s unchanged.
func (s *RocStr[B]) UnmarshalJSON(data []byte) error {
	var str *string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Annotatef(err, "decoding RocStr from JSON")
	}

	if str == nil {
		return nil
	}

	v, err := fromValidString[B](*str)
	if err != nil {
		return errors.Trace(err)
	}

	*s = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler of both gopkg.in/yaml.v2 and
// gopkg.in/yaml.v3.
func (s RocStr[B]) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.v2's Unmarshaler; yaml.v3 supports it too.
func (s *RocStr[B]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return errors.Annotatef(err, "decoding RocStr from YAML")
	}

	v, err := fromValidString[B](str)
	if err != nil {
		return errors.Trace(err)
	}

	*s = v
	return nil
}

// fromValidString is From for external data: invalid UTF-8 is an error
// instead of being cut off.
func fromValidString[B Buffer](s string) (RocStr[B], error) {
	if !utf8.ValidString(s) {
		return RocStr[B]{}, errors.NotValidf("UTF-8 text %q", s)
	}

	return From[B](s), nil
}
