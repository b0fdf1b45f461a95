package style

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// escapes expands the ESC spellings people type into single-quoted or
// plain YAML scalars. Double-quoted YAML already understands "\e".
var escapes = strings.NewReplacer(
	`\x1b`, "\x1b",
	`\x1B`, "\x1b",
	`\u001b`, "\x1b",
	`\u001B`, "\x1b",
	`\033`, "\x1b",
	`\e`, "\x1b",
)

// ParseReference decodes a YAML mapping of token names to escape sequences.
func ParseReference(r io.Reader) (*Reference, error) {
	var codes map[string]string
	if err := yaml.NewDecoder(r).Decode(&codes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyReference
		}
		return nil, fmt.Errorf("decoding style reference: %w", err)
	}

	for name, code := range codes {
		codes[name] = ExpandEscapes(code)
	}
	return NewReference(codes)
}

// ExpandEscapes turns the textual ESC spellings \e, \x1b, \u001b and \033
// into the escape character.
func ExpandEscapes(s string) string {
	return escapes.Replace(s)
}

// LoadReference reads a YAML token table from path.
func LoadReference(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening style reference: %w", err)
	}
	defer f.Close()

	ref, err := ParseReference(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ref, nil
}

// MarshalYAML writes the table as a plain name -> sequence mapping.
func (r *Reference) MarshalYAML() (any, error) {
	return r.Codes(), nil
}
