package api

// MessageV1 is the stable JSON/JSONL schema for one processed message.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MessageV1 struct {
	Index          int    `json:"index"`
	Input          string `json:"input"`
	Output         string `json:"output"`
	StartPositions []int  `json:"start_positions"` // rotation counts, leftmost first
	EndPositions   []int  `json:"end_positions"`
	Error          string `json:"error,omitempty"`
}
