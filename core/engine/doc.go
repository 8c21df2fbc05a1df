// Package engine assembles plugboard, rotor chain and reflector into a
// working machine. It never imports anything outside enigma-core; file
// formats, flags and diagnostics live in the application module.
package engine
