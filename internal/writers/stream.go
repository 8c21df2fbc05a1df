package writers

import (
	"bufio"
	"io"
)

// sink is one open output: emit is called per value, finish once at the end.
type sink[T any] struct {
	emit   func(T) error
	finish func() error
}

// start spins up a writer goroutine for values of type T. The returned error
// channel yields exactly once, after the input channel is closed. After a
// write error the remaining input is drained and dropped so senders never
// block.
func start[T any](out io.Writer, bufSize int, open func(*bufio.Writer) sink[T]) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		s := open(bw)
		var err error
		for v := range in {
			if err == nil {
				err = s.emit(v)
			}
		}
		if err == nil && s.finish != nil {
			err = s.finish()
		}
		if err == nil {
			err = bw.Flush()
		}
		done <- err
	}()

	return in, done
}
