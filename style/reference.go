package style

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrEmptyReference is returned when a table defines no tokens.
	ErrEmptyReference = errors.New("style reference has no tokens")

	// ErrInvalidToken is returned for empty token names and names that
	// contain a bracket. Keeping brackets out of names means at most one
	// token can match at a position, so substitution does not depend on
	// table order.
	ErrInvalidToken = errors.New("invalid token name")
)

// Reference is an immutable token table. The zero value has no tokens and
// leaves every string untouched.
type Reference struct {
	codes    map[string]string
	names    []string
	replacer *strings.Replacer
}

// NewReference builds a table from name -> escape sequence pairs.
// The map is copied; later changes to it do not affect the table.
func NewReference(codes map[string]string) (*Reference, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyReference
	}

	names := slices.Sorted(maps.Keys(codes))
	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		if err := validateName(name); err != nil {
			return nil, err
		}
		pairs = append(pairs, "["+name+"]", codes[name])
	}

	return &Reference{
		codes:    maps.Clone(codes),
		names:    names,
		replacer: strings.NewReplacer(pairs...),
	}, nil
}

// MustReference is like NewReference but panics on error.
// Intended for package-level tables built from literals.
func MustReference(codes map[string]string) *Reference {
	ref, err := NewReference(codes)
	if err != nil {
		panic(err)
	}
	return ref
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidToken)
	}
	if strings.ContainsAny(name, "[]") {
		return fmt.Errorf("%w: %q contains a bracket", ErrInvalidToken, name)
	}
	return nil
}

// Apply replaces every known [name] in s with its escape sequence.
//
// Replacement is a single left-to-right pass, so inserted sequences are
// never scanned again. Token names cannot contain brackets, which means at
// most one token can match at any position and the result does not depend
// on table order.
func (r *Reference) Apply(s string) string {
	if r == nil || r.replacer == nil {
		return s
	}
	return r.replacer.Replace(s)
}

// Code returns the escape sequence for name.
func (r *Reference) Code(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	code, ok := r.codes[name]
	return code, ok
}

// Names returns the token names in sorted order.
func (r *Reference) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Len reports how many tokens the table defines.
func (r *Reference) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Codes returns a copy of the underlying name -> sequence map.
func (r *Reference) Codes() map[string]string {
	if r == nil {
		return map[string]string{}
	}
	return maps.Clone(r.codes)
}

// Merge returns a new table with overrides layered over r.
// An empty override map returns r itself.
func (r *Reference) Merge(overrides map[string]string) (*Reference, error) {
	if len(overrides) == 0 && r.Len() > 0 {
		return r, nil
	}
	merged := r.Codes()
	maps.Copy(merged, overrides)
	return NewReference(merged)
}
