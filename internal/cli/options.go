// Package cli holds the enigma command-line options and their validation.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"enigma/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Machine
	Machine string   // YAML machine description
	Args    []string // PLUGBOARD REFLECTOR [ROTOR ...] POSITIONS

	// Input
	Text  string
	Lines bool

	// Performance
	Threads int

	// Output
	Output string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Register wires all flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVar(&o.Machine, "machine", "", "YAML machine description (replaces the file arguments)")

	fs.StringVarP(&o.Text, "text", "t", "", "message to encrypt (default: read STDIN)")
	fs.BoolVar(&o.Lines, "lines", false, "treat every input line as its own message, each from the start positions")

	fs.IntVarP(&o.Threads, "threads", "j", 0, "worker threads for --lines (0 = all CPUs)")

	fs.StringVarP(&o.Output, "output", "o", "text", "output: "+strings.Join(writers.Formats(), " | "))

	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only report errors on STDERR")
	fs.BoolVar(&o.Verbose, "verbose", false, "log configuration details on STDERR")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")
}

// UsageError marks option misuse. The caller prints usage alongside it.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// Validate applies CLI invariants. Missing file arguments are left to the
// configuration loader, which reports them with the machine's own error kinds.
func Validate(o *Options) error {
	if o.Version {
		return nil
	}
	if o.Machine != "" && len(o.Args) > 0 {
		return usagef("--machine conflicts with file arguments %q", o.Args)
	}
	if o.Threads < 0 {
		return usagef("--threads must be ≥ 0")
	}
	if o.Text != "" && o.Lines {
		return usagef("--lines reads STDIN; it cannot be combined with --text")
	}
	valid := false
	for _, f := range writers.Formats() {
		valid = valid || f == o.Output
	}
	if !valid {
		return usagef("invalid --output %q", o.Output)
	}
	return nil
}

// IsUsage reports whether err came from Validate.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
