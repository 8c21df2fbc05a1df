// Package writers turns processed messages into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text/JSON/JSONL).
//   • The engine stays domain-only; cmdutil stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
