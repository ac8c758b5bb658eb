package wildcard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidArgument is returned when a Pattern is built from an absent
// string, e.g. a nil pointer or a JSON null.
var ErrInvalidArgument = errors.New("wildcard: invalid argument")

// Pattern is a compiled wildcard expression. It is immutable once built and
// safe for concurrent use by multiple goroutines.
//
// The zero value is an empty, case-insensitive pattern that matches only the
// empty string. A nil *Pattern matches nothing.
type Pattern struct {
	raw           string
	wild          runes
	caseSensitive bool
}

// New compiles a case-insensitive pattern.
//
//	p := wildcard.New("*.LOG")
//	p.Match("debug.log") // true
func New(pattern string) *Pattern {
	return Compile(pattern, false)
}

// Compile compiles pattern with the given case policy. Any string is a valid
// pattern; runs of '*' are kept as written and treated as one wildcard when
// matching.
func Compile(pattern string, caseSensitive bool) *Pattern {
	return &Pattern{
		raw:           pattern,
		wild:          fold(pattern, caseSensitive),
		caseSensitive: caseSensitive,
	}
}

// FromPointer compiles *pattern. A nil pattern is an absent value and yields an
// error wrapping ErrInvalidArgument; an empty string is fine.
func FromPointer(pattern *string, caseSensitive bool) (*Pattern, error) {
	if pattern == nil {
		return nil, fmt.Errorf("%w: pattern is nil", ErrInvalidArgument)
	}
	return Compile(*pattern, caseSensitive), nil
}

// Match is shorthand for New(pattern).Match(candidate).
func Match(pattern, candidate string) bool {
	return New(pattern).Match(candidate)
}

// Match reports whether the entire candidate matches the pattern.
//
// '?' consumes exactly one character and '*' consumes zero or more. Wildcards
// in the candidate are plain characters.
func (p *Pattern) Match(candidate string) bool {
	if p == nil {
		return false
	}
	return match(p.wild, fold(candidate, p.caseSensitive))
}

// MatchPtr is Match for an optional candidate. A nil candidate never matches.
func (p *Pattern) MatchPtr(candidate *string) bool {
	if candidate == nil {
		return false
	}
	return p.Match(*candidate)
}

// String returns the pattern exactly as it was given, before case folding.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.raw
}

// CaseSensitive reports whether literal characters are compared as-is.
func (p *Pattern) CaseSensitive() bool {
	return p != nil && p.caseSensitive
}

// MarshalText implements encoding.TextMarshaler.
func (p *Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver's case
// policy is kept, so a Pattern can be preset with Compile("", true) before
// decoding into it.
func (p *Pattern) UnmarshalText(text []byte) error {
	*p = *Compile(string(text), p.caseSensitive)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null is an absent pattern
// and is rejected with ErrInvalidArgument.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: pattern is null", ErrInvalidArgument)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("wildcard: pattern must be a JSON string: %w", err)
	}
	return p.UnmarshalText([]byte(s))
}

// fold converts s to the sequence the matcher walks. Case-insensitive input is
// lowered one code point at a time with unicode.ToLower, which is locale
// independent and never changes the sequence length.
func fold(s string, caseSensitive bool) runes {
	r := runes(s)
	if !caseSensitive {
		for i, c := range r {
			r[i] = unicode.ToLower(c)
		}
	}
	return r
}
