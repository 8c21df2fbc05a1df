// Package rotor implements the rotating substitution wheels and the chain
// that links them.
//
// A rotor stores its permutation as two offset tables. Turning the rotor by
// one step shifts both tables left by one entry; after the shift the rotation
// counter is compared with the notch set and, on a match, the rotor to the
// left turns as well. That carry can run through the whole chain.
package rotor

import (
	"enigma-core/alphabet"
	"enigma-core/fault"
)

// MaxValues bounds a rotor description: a full mapping plus one notch per
// letter.
const MaxValues = 2 * alphabet.Size

const none = -1

// Definition is the validated description of one rotor: Wiring[i] is the
// output for input i and Notches are rotation counts that carry to the left
// neighbour.
type Definition struct {
	Wiring  []int
	Notches []int
}

// FromValues splits a flat list the way rotor files are laid out: the first
// 26 values are the mapping, any remaining values are notches. Values are
// checked in order before the count is.
func FromValues(values []int) (Definition, error) {
	if err := CheckPrefix(values); err != nil {
		return Definition{}, err
	}
	if len(values) < alphabet.Size {
		return Definition{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
			"only %d of %d inputs mapped", len(values), alphabet.Size)
	}
	if len(values) > MaxValues {
		return Definition{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
			"%d notches given, at most %d allowed", len(values)-alphabet.Size, alphabet.Size)
	}
	return Definition{
		Wiring:  append([]int(nil), values[:alphabet.Size]...),
		Notches: append([]int(nil), values[alphabet.Size:]...),
	}, nil
}

// CheckPrefix runs the per-value checks of FromValues (range, then repeated
// mapping targets) without the count check, for values read before a file
// broke off.
func CheckPrefix(values []int) error {
	var seen [alphabet.Size]int
	for i := range seen {
		seen[i] = none
	}
	for n, v := range values {
		if !alphabet.Valid(v) {
			return fault.New(fault.InvalidIndex, fault.Rotor, "%d is not in 0..%d", v, alphabet.Size-1)
		}
		if n < alphabet.Size {
			if prev := seen[v]; prev != none {
				return fault.New(fault.InvalidRotorMapping, fault.Rotor,
					"input %d maps to %d, already mapped from input %d", n, v, prev)
			}
			seen[v] = n
		}
	}
	return nil
}

// Rotor is one wheel. The zero value is not usable; build rotors with New.
type Rotor struct {
	forward   [alphabet.Size]int
	backward  [alphabet.Size]int
	notch     [alphabet.Size]bool
	rotations int

	// slots of the neighbours inside the owning Chain
	left, right int
}

// New checks that d.Wiring is a permutation and that notches are in range.
func New(d Definition) (Rotor, error) {
	if len(d.Wiring) != alphabet.Size {
		return Rotor{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
			"%d mapping entries, need %d", len(d.Wiring), alphabet.Size)
	}
	if len(d.Notches) > alphabet.Size {
		return Rotor{}, fault.New(fault.InvalidRotorMapping, fault.Rotor,
			"%d notches given, at most %d allowed", len(d.Notches), alphabet.Size)
	}
	r := Rotor{left: none, right: none}
	var mapped [alphabet.Size]bool
	for in, out := range d.Wiring {
		if !alphabet.Valid(out) {
			return Rotor{}, fault.New(fault.InvalidIndex, fault.Rotor, "%d is not in 0..%d", out, alphabet.Size-1)
		}
		if mapped[out] {
			return Rotor{}, fault.New(fault.InvalidRotorMapping, fault.Rotor, "output %d mapped twice", out)
		}
		mapped[out] = true
		r.forward[in] = out - in
		r.backward[out] = in - out
	}
	for _, n := range d.Notches {
		if !alphabet.Valid(n) {
			return Rotor{}, fault.New(fault.InvalidIndex, fault.Rotor, "notch %d is not in 0..%d", n, alphabet.Size-1)
		}
		r.notch[n] = true
	}
	return r, nil
}

// EncryptForward follows the signal from the keyboard side towards the
// reflector.
func (r *Rotor) EncryptForward(i int) int { return alphabet.Mod(i + r.forward[i]) }

// EncryptBackward follows the signal from the reflector back to the keyboard.
func (r *Rotor) EncryptBackward(i int) int { return alphabet.Mod(i + r.backward[i]) }

// Rotations is the number of steps taken so far, modulo 26.
func (r *Rotor) Rotations() int { return r.rotations }

// Notched reports whether pos is one of the rotor's notches.
func (r *Rotor) Notched(pos int) bool { return alphabet.Valid(pos) && r.notch[pos] }

// advance turns the rotor by one letter and reports whether the new position
// engages a notch.
func (r *Rotor) advance() bool {
	shift(&r.forward)
	shift(&r.backward)
	r.rotations = (r.rotations + 1) % alphabet.Size
	return r.Notched(r.rotations)
}

func shift(a *[alphabet.Size]int) {
	first := a[0]
	copy(a[:], a[1:])
	a[alphabet.Size-1] = first
}
