package engine

import (
	"unicode/utf8"

	"enigma-core/alphabet"
	"enigma-core/fault"
	"enigma-core/rotor"
	"enigma-core/wiring"
)

// Config is everything needed to build a machine. Rotors and Positions are
// ordered from the leftmost rotor to the rightmost.
type Config struct {
	Plugboard []wiring.Pair
	Reflector []wiring.Pair
	Rotors    []rotor.Definition
	Positions []int
}

// Engine is one machine session. It is not safe for concurrent use; use Clone
// to get an independent machine per goroutine.
type Engine struct {
	plugboard *wiring.Plugboard
	reflector *wiring.Reflector
	chain     *rotor.Chain
	pressed   int
}

// Build validates cfg and returns a machine primed to its starting positions.
// Checks run in the order plugboard, reflector, position count, rotors,
// position values; the first failure wins.
func Build(cfg Config) (*Engine, error) {
	pb, err := wiring.NewPlugboard(cfg.Plugboard)
	if err != nil {
		return nil, err
	}
	rf, err := wiring.NewReflector(cfg.Reflector)
	if err != nil {
		return nil, err
	}
	if err := CheckPositionCount(len(cfg.Rotors), len(cfg.Positions)); err != nil {
		return nil, err
	}

	chain := rotor.NewChain()
	for slot, def := range cfg.Rotors {
		r, err := rotor.New(def)
		if err != nil {
			return nil, fault.WithSlot(err, slot)
		}
		chain.Append(r)
	}

	for slot, pos := range cfg.Positions {
		if !alphabet.Valid(pos) {
			e := fault.New(fault.InvalidIndex, fault.Positions, "starting position %d is not in 0..%d", pos, alphabet.Size-1)
			e.Slot = slot
			return nil, e
		}
	}
	// Leftmost first: priming a right rotor may carry into rotors already set.
	for slot, pos := range cfg.Positions {
		chain.Prime(slot, pos)
	}

	return &Engine{plugboard: pb, reflector: rf, chain: chain}, nil
}

// CheckPositionCount requires exactly one starting position per rotor.
func CheckPositionCount(rotors, positions int) error {
	switch {
	case positions < rotors:
		e := fault.New(fault.NoRotorStartingPosition, fault.Positions,
			"no starting position for rotor %d (%d given for %d rotors)", positions, positions, rotors)
		e.Slot = positions
		return e
	case positions > rotors:
		return fault.New(fault.TooManyStartingPositions, fault.Positions,
			"%d starting positions given for %d rotors", positions, rotors)
	}
	return nil
}

// Press runs one keypress: the rightmost rotor steps first, then the signal
// makes its round trip. i must be an alphabet index.
func (e *Engine) Press(i int) int {
	e.pressed++
	if last := e.chain.Rightmost(); last >= 0 {
		e.chain.Rotate(last)
	}
	i = e.plugboard.Encrypt(i)
	i = e.chain.Forward(i)
	i = e.reflector.Encrypt(i)
	i = e.chain.Backward(i)
	return e.plugboard.Encrypt(i)
}

// EncryptMessage presses every index in order. On an index outside the
// alphabet it stops and returns the output produced so far with an
// InvalidInputCharacter error; the machine keeps the state it had reached.
func (e *Engine) EncryptMessage(in []int) ([]int, error) {
	out := make([]int, 0, len(in))
	for n, i := range in {
		if !alphabet.Valid(i) {
			fe := fault.New(fault.InvalidInputCharacter, fault.Message, "index %d is not a letter", i)
			fe.Offset = n
			return out, fe
		}
		out = append(out, e.Press(i))
	}
	return out, nil
}

// EncryptString is EncryptMessage over the letters A–Z. Offset in the
// returned error is the byte offset of the rejected rune.
func (e *Engine) EncryptString(s string) (string, error) {
	idx, bad, ok := alphabet.Indices(s)
	out, err := e.EncryptMessage(idx)
	if err != nil {
		return alphabet.String(out), err
	}
	if !ok {
		r, _ := utf8.DecodeRuneInString(s[bad:])
		fe := fault.New(fault.InvalidInputCharacter, fault.Message, "%q is not an upper case letter A-Z", r)
		fe.Offset = bad
		return alphabet.String(out), fe
	}
	return alphabet.String(out), nil
}

// Positions reports rotor rotation counts from left to right.
func (e *Engine) Positions() []int { return e.chain.Positions() }

// Rotors is the number of rotors in the chain.
func (e *Engine) Rotors() int { return e.chain.Len() }

// Pressed counts keypresses since Build (clones inherit the count).
func (e *Engine) Pressed() int { return e.pressed }

// Clone returns a machine in the same state. The rotor chain is copied;
// plugboard and reflector are immutable and shared.
func (e *Engine) Clone() *Engine {
	return &Engine{
		plugboard: e.plugboard,
		reflector: e.reflector,
		chain:     e.chain.Clone(),
		pressed:   e.pressed,
	}
}
