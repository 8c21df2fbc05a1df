package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"enigma-core/fault"

	"enigma/internal/cmdutil"
	"enigma/pkg/api"
)

func results() []cmdutil.Result {
	return []cmdutil.Result{
		{Index: 0, Input: "AAAAA", Output: "BDZGO", Start: []int{0, 0, 0}, End: []int{0, 0, 5}},
		{Index: 1, Input: "AA1", Output: "BD", Start: []int{0, 0, 0}, End: []int{0, 0, 2},
			Err: fault.New(fault.InvalidInputCharacter, fault.Message, "'1'")},
	}
}

func run(t *testing.T, format string, rs []cmdutil.Result) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartMessageWriter(&buf, format, 1)
	for _, r := range rs {
		in <- r
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestTextWriter(t *testing.T) {
	got, err := run(t, "text", results())
	if err != nil {
		t.Fatal(err)
	}
	if got != "BDZGO\nBD\n" {
		t.Fatalf("got %q", got)
	}

	got, _ = run(t, "text", []cmdutil.Result{{Input: "1", Err: errors.New("bad")}})
	if got != "" {
		t.Fatalf("empty failed message wrote %q", got)
	}
}

func TestJSONWriter(t *testing.T) {
	got, err := run(t, "json", results())
	if err != nil {
		t.Fatal(err)
	}
	var msgs []api.MessageV1
	if err := json.Unmarshal([]byte(got), &msgs); err != nil || len(msgs) != 2 {
		t.Fatalf("json: %v len=%d", err, len(msgs))
	}
	if msgs[0].Error != "" || msgs[1].Error == "" || msgs[1].EndPositions[2] != 2 {
		t.Fatalf("messages %+v", msgs)
	}

	got, _ = run(t, "json", nil)
	if strings.TrimSpace(got) != "[]" {
		t.Fatalf("empty json = %q", got)
	}
}

func TestJSONLWriter(t *testing.T) {
	got, err := run(t, "jsonl", []cmdutil.Result{{Index: 3, Input: "A", Output: "B"}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"index":3,"input":"A","output":"B","start_positions":[],"end_positions":[]}` + "\n"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, "nope-format", results())
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got: %v", err)
	}
}

func TestFormats(t *testing.T) {
	if got := strings.Join(Formats(), ","); got != "json,jsonl,text" {
		t.Fatalf("formats = %s", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeSurfaces(t *testing.T) {
	in, done := StartMessageWriter(failWriter{}, "text", 1)
	for i := 0; i < 10; i++ {
		in <- cmdutil.Result{Output: strings.Repeat("A", 1<<14)}
	}
	close(in)
	if err := <-done; !IsBrokenPipe(err) {
		t.Fatalf("err = %v", err)
	}
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(errors.New("x")) || IsBrokenPipe(nil) {
		t.Fatal("IsBrokenPipe classification")
	}
}
