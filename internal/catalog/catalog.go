// Package catalog holds the table of throw symbols patterns are built from.
// The order of the table decides generation order and therefore which rotation
// of a pattern is shown.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/jugglelog/internal/pattern"
)

var (
	// ErrEmptyCode is returned when a catalog entry has an empty code.
	ErrEmptyCode = errors.New("catalog: empty symbol code")
	// ErrDuplicateCode is returned when two catalog entries share a code.
	ErrDuplicateCode = errors.New("catalog: duplicate symbol code")
	// ErrUnknownSymbol is returned when a code or pattern key does not resolve
	// against the catalog.
	ErrUnknownSymbol = errors.New("catalog: unknown symbol")
)

// Symbol is one throw type.
type Symbol struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

// Catalog is an ordered list of symbols with unique, non-empty codes.
type Catalog struct {
	Symbols []Symbol `toml:"symbol"`
}

// Default returns the built-in throw table.
func Default() *Catalog {
	return &Catalog{Symbols: []Symbol{
		{Code: "S", Name: "Single"},
		{Code: "D", Name: "Double"},
		{Code: "L", Name: "Lazy"},
		{Code: "F", Name: "Flat"},
		{Code: "B", Name: "Behind the back"},
		{Code: "P", Name: "Penguin"},
		{Code: "O", Name: "Over the top"},
		{Code: "Od", Name: "Over the top double"},
		{Code: "Us", Name: "Under same leg"},
		{Code: "Uo", Name: "Under opposite leg"},
	}}
}

// LoadFile reads a catalog from a TOML file of [[symbol]] tables. An empty
// path returns Default().
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every code is non-empty and unique.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Symbols))
	for i, s := range c.Symbols {
		if s.Code == "" {
			return fmt.Errorf("symbol #%d: %w", i+1, ErrEmptyCode)
		}
		if seen[s.Code] {
			return fmt.Errorf("%q: %w", s.Code, ErrDuplicateCode)
		}
		seen[s.Code] = true
	}
	return nil
}

// Codes returns all symbol codes in catalog order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.Symbols))
	for i, s := range c.Symbols {
		out[i] = s.Code
	}
	return out
}

// Lookup returns the symbol with the given code.
func (c *Catalog) Lookup(code string) (Symbol, bool) {
	for _, s := range c.Symbols {
		if s.Code == code {
			return s, true
		}
	}
	return Symbol{}, false
}

// Select returns the given codes reordered to catalog order, dropping
// duplicates. Any code missing from the catalog is an error.
func (c *Catalog) Select(codes []string) ([]string, error) {
	want := make(map[string]bool, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := c.Lookup(code); !ok {
			return nil, fmt.Errorf("%q: %w", code, ErrUnknownSymbol)
		}
		want[code] = true
	}
	var out []string
	for _, s := range c.Symbols {
		if want[s.Code] {
			out = append(out, s.Code)
		}
	}
	return out, nil
}

// Tokenize splits a pattern key into symbols. Longer codes are tried first,
// so "OdS" becomes [Od S] with the default catalog, and a split that strands
// the rest of the key is abandoned for a shorter code.
func (c *Catalog) Tokenize(key string) (pattern.Pattern, error) {
	codes := c.Codes()
	sort.SliceStable(codes, func(i, j int) bool { return len(codes[i]) > len(codes[j]) })

	dead := make(map[int]bool)
	furthest := 0
	var split func(off int) pattern.Pattern
	split = func(off int) pattern.Pattern {
		if off == len(key) {
			return pattern.Pattern{}
		}
		if dead[off] {
			return nil
		}
		furthest = max(furthest, off)
		for _, code := range codes {
			if !strings.HasPrefix(key[off:], code) {
				continue
			}
			if tail := split(off + len(code)); tail != nil {
				return append(pattern.Pattern{code}, tail...)
			}
		}
		dead[off] = true
		return nil
	}

	p := split(0)
	if p == nil {
		return nil, fmt.Errorf("%q at offset %d of %q: %w", key[furthest:], furthest, key, ErrUnknownSymbol)
	}
	return p, nil
}
