package writers

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"enigma/internal/cmdutil"
)

// Output format registry (format → sink constructor). Formats register in
// init() blocks of their own files.
var messageFormats = map[string]func(*bufio.Writer) sink[cmdutil.Result]{}

func registerMessage(format string, open func(*bufio.Writer) sink[cmdutil.Result]) {
	messageFormats[format] = open
}

// Formats lists the registered output formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(messageFormats))
	for k := range messageFormats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StartMessageWriter spins up a writer goroutine for processed messages in
// the given format. An unknown format is reported on the error channel once
// the input is closed.
func StartMessageWriter(out io.Writer, format string, bufSize int) (chan<- cmdutil.Result, <-chan error) {
	open, ok := messageFormats[format]
	if !ok {
		open = func(*bufio.Writer) sink[cmdutil.Result] {
			err := fmt.Errorf("unknown output format %q (no writer registered)", format)
			return sink[cmdutil.Result]{
				emit:   func(cmdutil.Result) error { return err },
				finish: func() error { return err },
			}
		}
	}
	return start(out, bufSize, open)
}
