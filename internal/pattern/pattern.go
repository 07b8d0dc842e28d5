// Package pattern enumerates rotation-distinct throw sequences and derives the
// repeating base and family of a sequence. Everything here is pure; a Pattern is
// a slice of opaque symbol codes and all operations work on tokens, never on the
// characters of the concatenated key.
package pattern

import "strings"

// MaxRepeat is the number of repetitions of a base that make up its family.
const MaxRepeat = 6

// Pattern is an ordered sequence of symbol codes.
type Pattern []string

// Of builds a Pattern from individual symbol codes.
func Of(symbols ...string) Pattern {
	return Pattern(symbols)
}

// String returns the pattern key: the concatenation of its symbols.
func (p Pattern) String() string {
	return strings.Join(p, "")
}

// Len returns the number of symbols in the pattern.
func (p Pattern) Len() int {
	return len(p)
}

// Equal reports whether p and q hold the same symbols in the same order.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Rotate returns p cyclically shifted left by k tokens. The receiver is not
// modified.
func (p Pattern) Rotate(k int) Pattern {
	n := len(p)
	if n == 0 {
		return Pattern{}
	}
	k = ((k % n) + n) % n
	out := make(Pattern, 0, n)
	out = append(out, p[k:]...)
	out = append(out, p[:k]...)
	return out
}

// Repeat returns p concatenated with itself count times.
func (p Pattern) Repeat(count int) Pattern {
	if count <= 0 {
		return Pattern{}
	}
	out := make(Pattern, 0, len(p)*count)
	for range count {
		out = append(out, p...)
	}
	return out
}

// Base returns the shortest prefix of p that, repeated, reproduces p. Prefix
// lengths are tried from 1 up to half the pattern length; an aperiodic pattern
// (or one of length 1) is its own base.
func Base(p Pattern) Pattern {
	n := len(p)
	for d := 1; d <= n/2; d++ {
		if n%d != 0 {
			continue
		}
		prefix := p[:d]
		if prefix.Repeat(n / d).Equal(p) {
			return append(Pattern(nil), prefix...)
		}
	}
	return append(Pattern(nil), p...)
}

// IsRepeating reports whether p is a repetition of a strictly shorter base.
func IsRepeating(p Pattern) bool {
	return len(Base(p)) < len(p)
}

// Related returns the family of p: its base repeated 1 through MaxRepeat
// times, in that order. The full family is returned even when p itself is
// aperiodic or longer than any member.
func Related(p Pattern) []Pattern {
	base := Base(p)
	if len(base) == 0 {
		return nil
	}
	family := make([]Pattern, 0, MaxRepeat)
	for k := 1; k <= MaxRepeat; k++ {
		family = append(family, base.Repeat(k))
	}
	return family
}
