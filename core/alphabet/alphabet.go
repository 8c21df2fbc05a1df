// Package alphabet converts between the 26 letters A–Z and the indices 0..25
// used everywhere inside the machine.
package alphabet

// Size is the number of symbols the machine understands.
const Size = 26

// Valid reports whether i is an index of the alphabet.
func Valid(i int) bool { return i >= 0 && i < Size }

// Index returns the index of an uppercase letter A–Z.
func Index(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}

// Letter returns the letter for index i. i must be Valid.
func Letter(i int) rune { return rune('A' + i) }

// Mod reduces x into 0..Size-1, also for negative x.
func Mod(x int) int {
	return ((x % Size) + Size) % Size
}

// Indices converts a string of uppercase letters. It stops at the first rune
// outside A–Z and returns its byte offset; ok is false in that case.
func Indices(s string) (out []int, bad int, ok bool) {
	out = make([]int, 0, len(s))
	for off, r := range s {
		i, good := Index(r)
		if !good {
			return out, off, false
		}
		out = append(out, i)
	}
	return out, -1, true
}

// String renders indices as letters.
func String(idx []int) string {
	b := make([]rune, len(idx))
	for n, i := range idx {
		b[n] = Letter(i)
	}
	return string(b)
}
