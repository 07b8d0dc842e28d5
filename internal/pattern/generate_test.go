package pattern

import (
	"math"
	"reflect"
	"testing"
)

func TestGenerate_TwoSymbolsLengthTwo(t *testing.T) {
	t.Parallel()
	got := keys(Generate([]string{"A", "B"}, 2))
	want := []string{"AA", "AB", "BB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate({A,B}, 2) = %v, want %v", got, want)
	}
}

func TestGenerate_DegenerateInputs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		symbols []string
		length  int
	}{
		{"no symbols", nil, 3},
		{"only empty symbols", []string{"", ""}, 2},
		{"zero length", []string{"S"}, 0},
		{"negative length", []string{"S", "D"}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Generate(tt.symbols, tt.length); len(got) != 0 {
				t.Errorf("Generate(%v, %d) = %v, want empty", tt.symbols, tt.length, keys(got))
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	symbols := []string{"S", "D", "Od"}
	first := keys(Generate(symbols, 4))
	second := keys(Generate(symbols, 4))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Generate is not deterministic:\n%v\n%v", first, second)
	}
}

func TestGenerate_SortedAndRotationDistinct(t *testing.T) {
	t.Parallel()
	got := Generate([]string{"S", "D", "L"}, 4)
	for i := 1; i < len(got); i++ {
		if got[i-1].String() > got[i].String() {
			t.Fatalf("output not sorted at %d: %q > %q", i, got[i-1], got[i])
		}
	}
	seen := make(map[string]int)
	for i, p := range got {
		for k := range p.Len() {
			if j, ok := seen[p.Rotate(k).String()]; ok && j != i {
				t.Fatalf("%q and %q are rotations of each other", got[j], p)
			}
		}
		seen[p.String()] = i
	}
}

func TestGenerate_CardinalityBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		symbols []string
		length  int
	}{
		{[]string{"S"}, 1},
		{[]string{"S"}, 5},
		{[]string{"S", "D"}, 1},
		{[]string{"S", "D"}, 3},
		{[]string{"S", "D"}, 6},
		{[]string{"S", "D", "L"}, 4},
		{[]string{"S", "D", "L", "F"}, 3},
	}
	for _, tt := range tests {
		total := Count(tt.symbols, tt.length)
		got := len(Generate(tt.symbols, tt.length))
		if got > total {
			t.Errorf("Generate(%v, %d) has %d patterns, more than %d", tt.symbols, tt.length, got, total)
		}
		if got*tt.length < total {
			t.Errorf("Generate(%v, %d) has %d patterns, fewer than %d/%d", tt.symbols, tt.length, got, total, tt.length)
		}
	}
}

func TestGenerate_KnownNecklaceCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		k, n, want int
	}{
		{2, 3, 4},
		{2, 4, 6},
		{2, 6, 14},
		{3, 3, 11},
		{3, 4, 24},
	}
	alphabet := []string{"S", "D", "L"}
	for _, tt := range tests {
		if got := len(Generate(alphabet[:tt.k], tt.n)); got != tt.want {
			t.Errorf("necklaces(k=%d, n=%d) = %d, want %d", tt.k, tt.n, got, tt.want)
		}
	}
}

func TestGenerate_RepresentativeFollowsSymbolOrder(t *testing.T) {
	t.Parallel()
	// With D before S the class {DS, SD} is represented by DS.
	got := keys(Generate([]string{"D", "S"}, 2))
	want := []string{"DD", "DS", "SS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate({D,S}, 2) = %v, want %v", got, want)
	}
}

func TestGenerate_DuplicateSymbolsIgnored(t *testing.T) {
	t.Parallel()
	got := keys(Generate([]string{"A", "B", "A"}, 2))
	want := []string{"AA", "AB", "BB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate = %v, want %v", got, want)
	}
}

func TestGenerate_MultiCharTokens(t *testing.T) {
	t.Parallel()
	got := Generate([]string{"O", "Od"}, 2)
	want := []string{"OO", "OOd", "OdOd"}
	if !reflect.DeepEqual(keys(got), want) {
		t.Fatalf("Generate({O,Od}, 2) = %v, want %v", keys(got), want)
	}
	for _, p := range got {
		if p.Len() != 2 {
			t.Errorf("%v has %d tokens, want 2", p, p.Len())
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()
	if got := Count([]string{"S", "D", "L"}, 4); got != 81 {
		t.Errorf("Count = %d, want 81", got)
	}
	if got := Count(nil, 4); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
	if got := Count([]string{"A", "B"}, 200); got != math.MaxInt {
		t.Errorf("Count overflow = %d, want MaxInt", got)
	}
}
