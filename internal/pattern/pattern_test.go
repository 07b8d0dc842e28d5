package pattern

import (
	"reflect"
	"testing"
)

func keys(ps []Pattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestBase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   Pattern
		want string
	}{
		{"single repeated", Of("D", "D", "D"), "D"},
		{"multi-char period", Of("Od", "Od", "Od"), "Od"},
		{"two-token period", Of("O", "d", "O", "d", "O", "d"), "Od"},
		{"aperiodic", Of("S", "D", "L"), "SDL"},
		{"length one", Of("S"), "S"},
		{"period of three in six", Of("S", "D", "L", "S", "D", "L"), "SDL"},
		{"non-divisor prefix", Of("S", "S", "D", "S", "S"), "SSDSS"},
		{"empty", Of(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Base(tt.in).String(); got != tt.want {
				t.Errorf("Base(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBase_TokenLevel(t *testing.T) {
	t.Parallel()
	// "Od" followed by "O","d" concatenates to a character-periodic key but the
	// token sequences differ, so the pattern is aperiodic.
	p := Of("Od", "O", "d")
	if got := Base(p); !got.Equal(p) {
		t.Errorf("Base(%v) = %v, want the pattern itself", p, got)
	}
	if IsRepeating(p) {
		t.Errorf("IsRepeating(%v) = true, want false", p)
	}
}

func TestBase_DoesNotAliasInput(t *testing.T) {
	t.Parallel()
	p := Of("D", "D")
	b := Base(p)
	b[0] = "X"
	if p[0] != "D" {
		t.Errorf("Base mutated its input: %v", p)
	}
}

func TestIsRepeating(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   Pattern
		want bool
	}{
		{Of("D"), false},
		{Of("D", "D"), true},
		{Of("S", "D"), false},
		{Of("S", "D", "S", "D"), true},
		{Of("Us", "Uo", "Us"), false},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			t.Parallel()
			if got := IsRepeating(tt.in); got != tt.want {
				t.Errorf("IsRepeating(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelated(t *testing.T) {
	t.Parallel()

	t.Run("repeating input", func(t *testing.T) {
		t.Parallel()
		got := keys(Related(Of("D", "D")))
		want := []string{"D", "DD", "DDD", "DDDD", "DDDDD", "DDDDDD"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Related(DD) = %v, want %v", got, want)
		}
	})

	t.Run("aperiodic input is its own base", func(t *testing.T) {
		t.Parallel()
		got := Related(Of("S", "D"))
		if len(got) != MaxRepeat {
			t.Fatalf("len(Related(SD)) = %d, want %d", len(got), MaxRepeat)
		}
		if got[0].String() != "SD" || got[2].String() != "SDSDSD" {
			t.Errorf("Related(SD) = %v", keys(got))
		}
	})

	t.Run("multi-char tokens", func(t *testing.T) {
		t.Parallel()
		got := Related(Of("Od", "Od"))
		if got[2].Len() != 3 {
			t.Errorf("third family member has %d tokens, want 3", got[2].Len())
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		if got := Related(Of()); got != nil {
			t.Errorf("Related(empty) = %v, want nil", got)
		}
	})
}

func TestRotate(t *testing.T) {
	t.Parallel()
	p := Of("S", "D", "L")
	tests := []struct {
		k    int
		want string
	}{
		{0, "SDL"},
		{1, "DLS"},
		{2, "LSD"},
		{3, "SDL"},
		{-1, "LSD"},
	}
	for _, tt := range tests {
		if got := p.Rotate(tt.k).String(); got != tt.want {
			t.Errorf("Rotate(%d) = %q, want %q", tt.k, got, tt.want)
		}
	}
	if p.String() != "SDL" {
		t.Errorf("Rotate mutated receiver: %v", p)
	}
}
