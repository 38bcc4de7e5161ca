package duration

import (
	"bytes"
	"github.com/pkg/errors"
	"strconv"
)

// MarshalText encodes d the way String does.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes text produced by MarshalText.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes d as a JSON string in seconds e.g "1.500000000"
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number of
// seconds. JSON null leaves d unchanged.
func (d *Duration) UnmarshalJSON(input []byte) error {
	if string(input) == "null" {
		return nil
	}
	text := input
	if bytes.HasPrefix(input, []byte(`"`)) {
		unquoted, err := strconv.Unquote(string(input))
		if err != nil {
			return errors.Wrap(ErrInvalidFormat, err.Error())
		}
		text = []byte(unquoted)
	}
	return d.UnmarshalText(text)
}
