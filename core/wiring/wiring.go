// Package wiring holds the two fixed substitutions of the machine: the
// plugboard, applied on the way in and on the way out, and the reflector that
// turns the signal around at the end of the rotor chain.
package wiring

import (
	"enigma-core/alphabet"
	"enigma-core/fault"
)

// ReflectorPairs is the number of pairs a reflector must declare.
const ReflectorPairs = alphabet.Size / 2

// Pair connects two letters in both directions.
type Pair struct{ A, B int }

// Pairs groups a flat list of indices two by two, checking in list order the
// way a configuration file is read: each value's range, then each complete
// pair for self connections and reused letters. An odd count is reported
// only after every complete pair passed, as the component's
// incorrect-number-of-parameters kind.
func Pairs(values []int, c fault.Component) ([]Pair, error) {
	out, err := scan(values, c)
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		k := fault.IncorrectNumberOfPlugboardParameters
		if c == fault.Reflector {
			k = fault.IncorrectNumberOfReflectorParameters
		}
		return nil, fault.New(k, c, "odd number of values (%d)", len(values))
	}
	return out, nil
}

// CheckPrefix runs the per-value and per-pair checks of Pairs on values read
// before a file broke off. A trailing unpaired value is range checked only.
func CheckPrefix(values []int, c fault.Component) error {
	_, err := scan(values, c)
	return err
}

func scan(values []int, c fault.Component) ([]Pair, error) {
	s := identity()
	var used [alphabet.Size]bool
	out := make([]Pair, 0, len(values)/2)
	for n, v := range values {
		if !alphabet.Valid(v) {
			return nil, fault.New(fault.InvalidIndex, c, "%d is not in 0..%d", v, alphabet.Size-1)
		}
		if n%2 == 0 {
			continue
		}
		p := Pair{A: values[n-1], B: v}
		if err := link(&s, &used, len(out), p, c); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// substitution is an involution over the alphabet.
type substitution [alphabet.Size]int

func identity() substitution {
	var s substitution
	for i := range s {
		s[i] = i
	}
	return s
}

// badPairKind is reported for self pairs and reused letters.
func badPairKind(c fault.Component) fault.Kind {
	if c == fault.Reflector {
		return fault.InvalidReflectorMapping
	}
	return fault.ImpossiblePlugboardConfiguration
}

// link adds pair n to s.
func link(s *substitution, used *[alphabet.Size]bool, n int, p Pair, c fault.Component) error {
	if !alphabet.Valid(p.A) || !alphabet.Valid(p.B) {
		return fault.New(fault.InvalidIndex, c, "pair %d (%d,%d) is outside 0..%d", n, p.A, p.B, alphabet.Size-1)
	}
	if p.A == p.B {
		return fault.New(badPairKind(c), c, "pair %d connects %c to itself", n, alphabet.Letter(p.A))
	}
	for _, x := range [2]int{p.A, p.B} {
		if used[x] {
			return fault.New(badPairKind(c), c, "pair %d reuses %c", n, alphabet.Letter(x))
		}
		used[x] = true
	}
	s[p.A], s[p.B] = p.B, p.A
	return nil
}

// connect applies pairs on top of the identity.
func connect(pairs []Pair, c fault.Component) (substitution, error) {
	s := identity()
	var used [alphabet.Size]bool
	for n, p := range pairs {
		if err := link(&s, &used, n, p, c); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Plugboard swaps the letters of each declared pair and leaves the rest alone.
// It never changes after construction and is safe for concurrent use.
type Plugboard struct{ m substitution }

// NewPlugboard validates pairs. Zero pairs is a valid, identity plugboard.
func NewPlugboard(pairs []Pair) (*Plugboard, error) {
	m, err := connect(pairs, fault.Plugboard)
	if err != nil {
		return nil, err
	}
	return &Plugboard{m: m}, nil
}

// Encrypt returns the partner of i, or i when it is not plugged.
func (p *Plugboard) Encrypt(i int) int { return p.m[i] }

// Reflector pairs up all 26 letters; no letter maps to itself.
// It never changes after construction and is safe for concurrent use.
type Reflector struct{ m substitution }

// NewReflector requires exactly 13 disjoint pairs.
func NewReflector(pairs []Pair) (*Reflector, error) {
	m, err := connect(pairs, fault.Reflector)
	if err != nil {
		return nil, err
	}
	if len(pairs) != ReflectorPairs {
		return nil, fault.New(fault.IncorrectNumberOfReflectorParameters, fault.Reflector,
			"%d pairs given, need %d", len(pairs), ReflectorPairs)
	}
	return &Reflector{m: m}, nil
}

// Encrypt returns the partner of i.
func (r *Reflector) Encrypt(i int) int { return r.m[i] }
