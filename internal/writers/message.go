package writers

import (
	"bufio"
	"encoding/json"

	"enigma/internal/cmdutil"
	"enigma/pkg/api"
)

func init() {
	registerMessage("text", openText)
	registerMessage("json", openJSON)
	registerMessage("jsonl", openJSONL)
}

// ToAPIMessage converts a result into the v1 wire type.
func ToAPIMessage(r cmdutil.Result) api.MessageV1 {
	m := api.MessageV1{
		Index:          r.Index,
		Input:          r.Input,
		Output:         r.Output,
		StartPositions: nonNil(r.Start),
		EndPositions:   nonNil(r.End),
	}
	if r.Err != nil {
		m.Error = r.Err.Error()
	}
	return m
}

func nonNil(p []int) []int {
	if p == nil {
		return []int{}
	}
	return p
}

// openText writes one ciphertext per line. A failed message contributes the
// prefix it produced, if any.
func openText(bw *bufio.Writer) sink[cmdutil.Result] {
	return sink[cmdutil.Result]{emit: func(r cmdutil.Result) error {
		if r.Err != nil && r.Output == "" {
			return nil
		}
		if _, err := bw.WriteString(r.Output); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	}}
}

func openJSON(bw *bufio.Writer) sink[cmdutil.Result] {
	all := []api.MessageV1{}
	return sink[cmdutil.Result]{
		emit: func(r cmdutil.Result) error {
			all = append(all, ToAPIMessage(r))
			return nil
		},
		finish: func() error {
			enc := json.NewEncoder(bw)
			enc.SetIndent("", "  ")
			return enc.Encode(all)
		},
	}
}

func openJSONL(bw *bufio.Writer) sink[cmdutil.Result] {
	enc := json.NewEncoder(bw)
	return sink[cmdutil.Result]{emit: func(r cmdutil.Result) error {
		return enc.Encode(ToAPIMessage(r))
	}}
}
