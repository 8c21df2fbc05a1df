package cmdutil

import (
	"context"

	"golang.org/x/sync/errgroup"

	"enigma-core/engine"
)

// Result is one processed message.
type Result struct {
	Index  int
	Input  string
	Output string
	Start  []int
	End    []int
	Err    error
}

// Encrypt runs msg through e and records positions around it. On failure
// Output holds the prefix encrypted before the bad symbol.
func Encrypt(e *engine.Engine, index int, msg string) Result {
	r := Result{Index: index, Input: msg, Start: e.Positions()}
	r.Output, r.Err = e.EncryptString(msg)
	r.End = e.Positions()
	return r
}

// RunLines encrypts every line on its own clone of base, at most threads at
// a time (threads <= 0 means no limit). base is not advanced. Results come
// back in input order. When a line fails, results are cut after it and its
// error is returned; lines before it stay in the slice.
func RunLines(ctx context.Context, base *engine.Engine, lines []string, threads int) ([]Result, error) {
	out := make([]Result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Encrypt(base.Clone(), i, line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Err != nil {
			return out[:i+1], out[i].Err
		}
	}
	return out, nil
}
