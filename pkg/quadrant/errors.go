package quadrant

import "fmt"

// Classification error reasons.
const (
	ReasonOutOfRange = "out_of_range"
)

// ClassificationError reports a coordinate that cannot be placed in any
// quadrant. Field names the offending coordinate ("x" or "y") and Value
// carries the rejected number.
type ClassificationError struct {
	Reason string
	Field  string
	Value  float64
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed: %s %s=%v, expected [-1, 1]", e.Reason, e.Field, e.Value)
}

// Render error reasons.
const (
	ReasonInvalidOption = "invalid_option"
)

// RenderError reports a rejected render or pipeline option. Field names
// the option and Value carries the rejected value as a string.
type RenderError struct {
	Reason string
	Field  string
	Value  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %s %s=%q", e.Reason, e.Field, e.Value)
}
