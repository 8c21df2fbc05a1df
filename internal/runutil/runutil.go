// internal/runutil/runutil.go
package runutil

import "runtime"

// ValidateThreads decides how many workers line mode gets, returns
// (threads, warnings).
// Rules:
//   - without --lines there is one message and one machine; --threads is ignored
//   - threads <= 0 → all CPUs
//   - never more workers than messages (at least one)
func ValidateThreads(lines bool, threads, messages int) (int, []string) {
	if !lines {
		if threads != 0 {
			return 1, []string{"--threads only applies with --lines; ignoring"}
		}
		return 1, nil
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if messages < 1 {
		messages = 1
	}
	if threads > messages {
		threads = messages
	}
	return threads, nil
}
