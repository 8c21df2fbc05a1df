package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"enigma-core/engine"
	"enigma-core/fault"

	"enigma/internal/catalog"
)

func classicEngine(t *testing.T) *engine.Engine {
	t.Helper()
	refl, _ := catalog.Reflector("B")
	cfg := engine.Config{Reflector: refl, Positions: []int{0, 0, 0}}
	for _, n := range []string{"I", "II", "III"} {
		d, ok := catalog.Rotor(n)
		if !ok {
			t.Fatalf("no rotor %s", n)
		}
		cfg.Rotors = append(cfg.Rotors, d)
	}
	e, err := engine.Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRunLinesOrderAndIsolation(t *testing.T) {
	base := classicEngine(t)
	lines := []string{"AAAAA", "AAAAA", "A", "AAAAA"}
	res, err := RunLines(context.Background(), base, lines, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"BDZGO", "BDZGO", "B", "BDZGO"}
	for i, r := range res {
		if r.Index != i || r.Output != want[i] {
			t.Fatalf("result %d = %+v; want %s", i, r, want[i])
		}
	}
	if base.Pressed() != 0 {
		t.Fatalf("base advanced: %d", base.Pressed())
	}
	if got := res[0].End; got[2] != 5 {
		t.Fatalf("end positions %v", got)
	}
}

func TestRunLinesStopsAtFailure(t *testing.T) {
	base := classicEngine(t)
	res, err := RunLines(context.Background(), base, []string{"AAAAA", "AA1A", "AAAAA"}, 0)
	if k, _ := fault.KindOf(err); k != fault.InvalidInputCharacter {
		t.Fatalf("err = %v", err)
	}
	if len(res) != 2 || res[1].Output != "BD" || res[0].Output != "BDZGO" {
		t.Fatalf("results = %+v", res)
	}
}

func TestRunLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunLines(ctx, classicEngine(t), []string{"A", "B"}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestEncryptRecordsPositions(t *testing.T) {
	r := Encrypt(classicEngine(t), 7, "AAA")
	if r.Index != 7 || r.Output != "BDZ" || r.Err != nil {
		t.Fatalf("%+v", r)
	}
	if r.Start[2] != 0 || r.End[2] != 3 {
		t.Fatalf("start %v end %v", r.Start, r.End)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false, false)
	log.Debug("hidden")
	Warnf(log, "shown %d", 1)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown 1") {
		t.Fatalf("default level output %q", buf.String())
	}

	buf.Reset()
	log = NewLogger(&buf, true, true)
	Warnf(log, "quiet")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}

	buf.Reset()
	NewLogger(&buf, false, true).Debug("detail")
	if !strings.Contains(buf.String(), "level=debug") {
		t.Fatalf("verbose output %q", buf.String())
	}
}
