// Package fault defines the closed set of failures the machine can report.
//
// Kind values double as process exit codes for the command-line tool, so
// their numeric values are part of the interface and must not be reordered.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	None Kind = iota
	InsufficientParameters
	InvalidInputCharacter
	InvalidIndex
	NonNumericCharacter
	ImpossiblePlugboardConfiguration
	IncorrectNumberOfPlugboardParameters
	InvalidRotorMapping
	NoRotorStartingPosition
	InvalidReflectorMapping
	IncorrectNumberOfReflectorParameters
	ErrorOpeningConfigurationFile
	TooManyStartingPositions
)

var kindNames = [...]string{
	None:                                 "no error",
	InsufficientParameters:               "insufficient number of parameters",
	InvalidInputCharacter:                "invalid input character",
	InvalidIndex:                         "invalid index",
	NonNumericCharacter:                  "non-numeric character",
	ImpossiblePlugboardConfiguration:     "impossible plugboard configuration",
	IncorrectNumberOfPlugboardParameters: "incorrect number of plugboard parameters",
	InvalidRotorMapping:                  "invalid rotor mapping",
	NoRotorStartingPosition:              "no rotor starting position",
	InvalidReflectorMapping:              "invalid reflector mapping",
	IncorrectNumberOfReflectorParameters: "incorrect number of reflector parameters",
	ErrorOpeningConfigurationFile:        "error opening configuration file",
	TooManyStartingPositions:             "too many rotor starting positions",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("fault(%d)", int(k))
}

// Code is the exit status reported for k. Surplus starting positions share
// the code of missing ones.
func (k Kind) Code() int {
	if k == TooManyStartingPositions {
		return int(NoRotorStartingPosition)
	}
	return int(k)
}

// Component names the machine part a failure belongs to.
type Component string

const (
	Plugboard Component = "plugboard"
	Reflector Component = "reflector"
	Rotor     Component = "rotor"
	Positions Component = "positions"
	Message   Component = "message"
	Arguments Component = "arguments"
	Machine   Component = "machine"
)

// Error is the only error type the core returns.
type Error struct {
	Kind      Kind
	Component Component
	Source    string // configuration file or other origin, when known
	Slot      int    // rotor slot counted from the left, -1 when not applicable
	Offset    int    // position in the message, -1 when not applicable
	Detail    string
	Err       error
}

// New returns an Error with Slot and Offset unset.
func New(k Kind, c Component, format string, a ...any) *Error {
	return &Error{Kind: k, Component: c, Slot: -1, Offset: -1, Detail: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Component))
	if e.Slot >= 0 {
		fmt.Fprintf(&b, " %d", e.Slot)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err. ok is false for nil and for errors
// not produced by this package.
func KindOf(err error) (k Kind, ok bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return None, false
}

// WithSource records where the failing configuration came from. Errors not
// produced by this package are returned unchanged.
func WithSource(err error, source string) error {
	var fe *Error
	if !errors.As(err, &fe) {
		return err
	}
	fe.Source = source
	return err
}

// WithSlot records the rotor slot a failure belongs to.
func WithSlot(err error, slot int) error {
	var fe *Error
	if errors.As(err, &fe) {
		fe.Slot = slot
	}
	return err
}
