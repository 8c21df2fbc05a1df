// Package config turns configuration files into an engine.Config.
//
// Two layouts are understood: the classic set of whitespace-separated integer
// files (plugboard, reflector, one per rotor, positions) and a single YAML
// machine description written with letters.
package config

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"enigma-core/engine"
	"enigma-core/fault"
	"enigma-core/rotor"
	"enigma-core/wiring"
)

// Files names the classic configuration files. Rotors are ordered left to
// right.
type Files struct {
	Plugboard string
	Reflector string
	Rotors    []string
	Positions string
}

// FilesFromArgs maps positional arguments
// PLUGBOARD REFLECTOR [ROTOR ...] POSITIONS.
func FilesFromArgs(args []string) (Files, error) {
	if len(args) < 3 {
		return Files{}, fault.New(fault.InsufficientParameters, fault.Arguments,
			"need plugboard, reflector and positions files, got %d argument(s)", len(args))
	}
	return Files{
		Plugboard: args[0],
		Reflector: args[1],
		Rotors:    append([]string(nil), args[2:len(args)-1]...),
		Positions: args[len(args)-1],
	}, nil
}

// ReadValues reads whitespace-separated integers. The component is used to
// label a non-numeric token; the values read before it are returned with
// that error.
func ReadValues(r io.Reader, c fault.Component) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []int
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
				return nil, fault.New(fault.InvalidIndex, c, "%s is out of range", tok)
			}
			return out, fault.New(fault.NonNumericCharacter, c, "%q after %d value(s)", tok, len(out))
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// readFile opens path and reads its values; every failure carries path.
func readFile(path string, c fault.Component) ([]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &fault.Error{Kind: fault.ErrorOpeningConfigurationFile, Component: c, Source: path, Slot: -1, Offset: -1, Err: err}
	}
	defer func() { _ = fh.Close() }()

	vals, err := ReadValues(fh, c)
	if err != nil {
		return vals, fault.WithSource(err, path)
	}
	return vals, nil
}

// readChecked is readFile for files validated value by value. When the file
// breaks off at a non-numeric token, a fault among the values before it is
// reported instead.
func readChecked(path string, c fault.Component, check func([]int) error) ([]int, error) {
	vals, err := readFile(path, c)
	if k, _ := fault.KindOf(err); k == fault.NonNumericCharacter {
		if perr := check(vals); perr != nil {
			return nil, fault.WithSource(perr, path)
		}
	}
	if err != nil {
		return nil, err
	}
	return vals, nil
}

func checkPairs(c fault.Component) func([]int) error {
	return func(vals []int) error { return wiring.CheckPrefix(vals, c) }
}

// Load reads every file in f. Files are checked in the order plugboard,
// reflector, positions, rotors so the first reported problem matches the
// order an operator would set the machine up.
func Load(f Files, log logrus.FieldLogger) (engine.Config, error) {
	var cfg engine.Config

	vals, err := readChecked(f.Plugboard, fault.Plugboard, checkPairs(fault.Plugboard))
	if err != nil {
		return cfg, err
	}
	if cfg.Plugboard, err = wiring.Pairs(vals, fault.Plugboard); err != nil {
		return cfg, fault.WithSource(err, f.Plugboard)
	}
	log.WithFields(logrus.Fields{"file": f.Plugboard, "pairs": len(cfg.Plugboard)}).Debug("plugboard loaded")

	vals, err = readChecked(f.Reflector, fault.Reflector, checkPairs(fault.Reflector))
	if err != nil {
		return cfg, err
	}
	if cfg.Reflector, err = wiring.Pairs(vals, fault.Reflector); err != nil {
		return cfg, fault.WithSource(err, f.Reflector)
	}
	log.WithField("file", f.Reflector).Debug("reflector loaded")

	if cfg.Positions, err = readFile(f.Positions, fault.Positions); err != nil {
		return cfg, err
	}
	if err := engine.CheckPositionCount(len(f.Rotors), len(cfg.Positions)); err != nil {
		return cfg, fault.WithSource(err, f.Positions)
	}
	log.WithFields(logrus.Fields{"file": f.Positions, "positions": cfg.Positions}).Debug("starting positions loaded")

	for slot, path := range f.Rotors {
		vals, err := readChecked(path, fault.Rotor, rotor.CheckPrefix)
		if err != nil {
			return cfg, fault.WithSlot(err, slot)
		}
		def, err := rotor.FromValues(vals)
		if err != nil {
			return cfg, fault.WithSlot(fault.WithSource(err, path), slot)
		}
		cfg.Rotors = append(cfg.Rotors, def)
		log.WithFields(logrus.Fields{"file": path, "slot": slot, "notches": def.Notches}).Debug("rotor loaded")
	}
	return cfg, nil
}

// Sources maps build failures back to the file they came from.
func (f Files) Sources(err error) error {
	var fe *fault.Error
	if !errors.As(err, &fe) || fe.Source != "" {
		return err
	}
	switch fe.Component {
	case fault.Plugboard:
		fe.Source = f.Plugboard
	case fault.Reflector:
		fe.Source = f.Reflector
	case fault.Positions:
		fe.Source = f.Positions
	case fault.Rotor:
		if fe.Slot >= 0 && fe.Slot < len(f.Rotors) {
			fe.Source = f.Rotors[fe.Slot]
		}
	}
	return err
}
