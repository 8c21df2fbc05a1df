// Package catalog lists historical rotor and reflector wirings by name.
//
// Turnover letters are converted to this machine's notch convention: a notch
// is the rotation count reached right after the turnover, counted from a
// rotor started at A.
package catalog

import (
	"sort"
	"strings"

	"enigma-core/alphabet"
	"enigma-core/rotor"
	"enigma-core/wiring"
)

type rotorEntry struct {
	wiring    string
	turnovers string
}

var rotors = map[string]rotorEntry{
	"I":    {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	"II":   {"AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	"III":  {"BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	"IV":   {"ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	"V":    {"VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	"VI":   {"JPGVOUMFYQBENHZRDKASXLICTW", "ZM"},
	"VII":  {"NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"},
	"VIII": {"FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"},
}

var reflectors = map[string]string{
	"B": "AY BR CU DH EQ FS GL IP JX KN MO TZ VW",
	"C": "AF BV CP DJ EI GO HY KR LZ MX NW QT SU",
}

// Rotor returns the definition of a named rotor (I–VIII, case-insensitive).
func Rotor(name string) (rotor.Definition, bool) {
	e, ok := rotors[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return rotor.Definition{}, false
	}
	d := rotor.Definition{Wiring: make([]int, 0, alphabet.Size)}
	for _, r := range e.wiring {
		i, _ := alphabet.Index(r)
		d.Wiring = append(d.Wiring, i)
	}
	for _, r := range e.turnovers {
		i, _ := alphabet.Index(r)
		d.Notches = append(d.Notches, alphabet.Mod(i+1))
	}
	return d, true
}

// Reflector returns the pairs of a named reflector (B or C).
func Reflector(name string) ([]wiring.Pair, bool) {
	s, ok := reflectors[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	var out []wiring.Pair
	for _, f := range strings.Fields(s) {
		a, _ := alphabet.Index(rune(f[0]))
		b, _ := alphabet.Index(rune(f[1]))
		out = append(out, wiring.Pair{A: a, B: b})
	}
	return out, true
}

func RotorNames() []string     { return names(rotors) }
func ReflectorNames() []string { return names(reflectors) }

func names[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
