package rotor

// Chain owns its rotors in a slice; neighbours refer to each other by slot.
// Slot 0 is the first rotor appended.
type Chain struct {
	rotors []Rotor
}

// NewChain appends rotors left to right.
func NewChain(rs ...Rotor) *Chain {
	c := &Chain{rotors: make([]Rotor, 0, len(rs))}
	for _, r := range rs {
		c.Append(r)
	}
	return c
}

// Append links r to the right of the current rightmost rotor and returns its
// slot.
func (c *Chain) Append(r Rotor) int {
	slot := len(c.rotors)
	r.left, r.right = none, none
	if last := c.Rightmost(); last != none {
		c.rotors[last].right = slot
		r.left = last
	}
	c.rotors = append(c.rotors, r)
	return slot
}

// Len is the number of rotors in the chain.
func (c *Chain) Len() int { return len(c.rotors) }

// At returns the rotor in slot. It panics on a bad slot like slice indexing.
func (c *Chain) At(slot int) *Rotor { return &c.rotors[slot] }

// Leftmost walks left from the first slot. It returns -1 for an empty chain.
func (c *Chain) Leftmost() int {
	if len(c.rotors) == 0 {
		return none
	}
	cur := 0
	for c.rotors[cur].left != none {
		cur = c.rotors[cur].left
	}
	return cur
}

// Rightmost walks right from the first slot. It returns -1 for an empty chain.
func (c *Chain) Rightmost() int {
	if len(c.rotors) == 0 {
		return none
	}
	cur := 0
	for c.rotors[cur].right != none {
		cur = c.rotors[cur].right
	}
	return cur
}

// Rotate turns the rotor in slot and carries into left neighbours for as
// long as notches engage. The walk ends at the leftmost rotor.
func (c *Chain) Rotate(slot int) {
	for slot != none {
		r := &c.rotors[slot]
		if !r.advance() {
			return
		}
		slot = r.left
	}
}

// Prime turns the rotor in slot n times, one step at a time, so that notches
// passed on the way carry exactly as they would on the keyboard.
func (c *Chain) Prime(slot, n int) {
	for i := 0; i < n; i++ {
		c.Rotate(slot)
	}
}

// Forward passes i through every rotor from the rightmost to the leftmost.
func (c *Chain) Forward(i int) int {
	for cur := c.Rightmost(); cur != none; cur = c.rotors[cur].left {
		i = c.rotors[cur].EncryptForward(i)
	}
	return i
}

// Backward passes i through every rotor from the leftmost to the rightmost.
func (c *Chain) Backward(i int) int {
	for cur := c.Leftmost(); cur != none; cur = c.rotors[cur].right {
		i = c.rotors[cur].EncryptBackward(i)
	}
	return i
}

// Positions lists rotation counts from the leftmost rotor to the rightmost.
func (c *Chain) Positions() []int {
	out := make([]int, 0, len(c.rotors))
	for cur := c.Leftmost(); cur != none; cur = c.rotors[cur].right {
		out = append(out, c.rotors[cur].rotations)
	}
	return out
}

// Clone copies the chain including rotation state. Slots stay valid because
// neighbours are stored as slots, not pointers.
func (c *Chain) Clone() *Chain {
	return &Chain{rotors: append([]Rotor(nil), c.rotors...)}
}
