package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := len(c.Symbols); got != 10 {
		t.Errorf("len(Default().Symbols) = %d, want 10", got)
	}
	if s, ok := c.Lookup("Od"); !ok || s.Name != "Over the top double" {
		t.Errorf("Lookup(Od) = %+v, %v", s, ok)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		symbols []Symbol
		wantErr error
	}{
		{"ok", []Symbol{{Code: "A"}, {Code: "B"}}, nil},
		{"empty code", []Symbol{{Code: "A"}, {Code: ""}}, ErrEmptyCode},
		{"duplicate code", []Symbol{{Code: "A"}, {Code: "A"}}, ErrDuplicateCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := (&Catalog{Symbols: tt.symbols}).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSelect_CatalogOrder(t *testing.T) {
	t.Parallel()
	got, err := Default().Select([]string{"Od", "S", " D ", "S", ""})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"S", "D", "Od"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelect_Unknown(t *testing.T) {
	t.Parallel()
	_, err := Default().Select([]string{"S", "Z"})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Select(Z) error = %v, want ErrUnknownSymbol", err)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	c := Default()
	tests := []struct {
		key  string
		want []string
	}{
		{"SDL", []string{"S", "D", "L"}},
		{"OdS", []string{"Od", "S"}},
		{"OOd", []string{"O", "Od"}},
		{"UsUoB", []string{"Us", "Uo", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, err := c.Tokenize(tt.key)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.key, err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if _, err := c.Tokenize("SX"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Tokenize(SX) error = %v, want ErrUnknownSymbol", err)
	}
	if got, err := c.Tokenize(""); err != nil || len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, %v", got, err)
	}
}

func TestTokenize_BacktracksOverlappingCodes(t *testing.T) {
	t.Parallel()
	c := &Catalog{Symbols: []Symbol{{Code: "ab"}, {Code: "abc"}, {Code: "cd"}}}
	tests := []struct {
		key  string
		want []string
	}{
		{"abcd", []string{"ab", "cd"}},
		{"abcab", []string{"abc", "ab"}},
		{"abcdabc", []string{"ab", "cd", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, err := c.Tokenize(tt.key)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.key, err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	_, err := c.Tokenize("abce")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Tokenize(abce) error = %v, want ErrUnknownSymbol", err)
	}
	if !strings.Contains(err.Error(), "offset 3") {
		t.Errorf("error %q should point at offset 3", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("empty path is default", func(t *testing.T) {
		t.Parallel()
		c, err := LoadFile("")
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if !reflect.DeepEqual(c, Default()) {
			t.Errorf("LoadFile(\"\") did not return the default catalog")
		}
	})

	t.Run("toml file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "throws.toml")
		content := `
[[symbol]]
code = "3"
name = "Three"

[[symbol]]
code = "5"
name = "Five"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if got := c.Codes(); !reflect.DeepEqual(got, []string{"3", "5"}) {
			t.Errorf("Codes() = %v", got)
		}
	})

	t.Run("duplicate codes rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "dup.toml")
		content := "[[symbol]]\ncode = \"A\"\n\n[[symbol]]\ncode = \"A\"\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); !errors.Is(err, ErrDuplicateCode) {
			t.Errorf("LoadFile error = %v, want ErrDuplicateCode", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
