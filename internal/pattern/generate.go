package pattern

import (
	"math"
	"sort"
)

// Generate returns one representative of every rotation class of sequences of
// exactly length symbols drawn from symbols, sorted by key.
//
// Candidates are produced by nested iteration in the caller's symbol order and
// the first rotation generated for a class is the one kept. Empty and duplicate
// symbols are ignored. An empty symbol set or a non-positive length yields nil.
func Generate(symbols []string, length int) []Pattern {
	alphabet := distinct(symbols)
	if len(alphabet) == 0 || length <= 0 {
		return nil
	}

	accepted := make(map[string]bool)
	var unique []Pattern
	for _, candidate := range cartesian(alphabet, length) {
		if hasAcceptedRotation(candidate, accepted) {
			continue
		}
		accepted[candidate.String()] = true
		unique = append(unique, candidate)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})
	return unique
}

// Count returns the size of the full Cartesian power that Generate scans,
// saturating at math.MaxInt.
func Count(symbols []string, length int) int {
	n := len(distinct(symbols))
	if n == 0 || length <= 0 {
		return 0
	}
	total := 1
	for range length {
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}

func hasAcceptedRotation(p Pattern, accepted map[string]bool) bool {
	for k := range len(p) {
		if accepted[p.Rotate(k).String()] {
			return true
		}
	}
	return false
}

// cartesian lists every sequence of length tokens over alphabet in
// lexicographic order of alphabet positions.
func cartesian(alphabet []string, length int) []Pattern {
	var out []Pattern
	idx := make([]int, length)
	for {
		p := make(Pattern, length)
		for i, j := range idx {
			p[i] = alphabet[j]
		}
		out = append(out, p)

		// Odometer increment, rightmost position fastest.
		pos := length - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(alphabet) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

func distinct(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
