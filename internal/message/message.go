// Package message turns raw input text into messages for the engine.
package message

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Normalize drops every white-space rune. Case is kept; the engine rejects
// anything outside A-Z.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Read consumes r and returns it as a single normalized message.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Normalize(string(b)), nil
}

// Lines splits r into one message per line. Lines that are empty after
// normalization are skipped.
func Lines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for sc.Scan() {
		if m := Normalize(sc.Text()); m != "" {
			out = append(out, m)
		}
	}
	return out, sc.Err()
}
