package loader

import "fmt"

// Acquisition error reasons.
const (
	ReasonUnreachable = "unreachable"
	ReasonBadStatus   = "bad_status"
	ReasonUnsupported = "unsupported"
	ReasonTooLarge    = "too_large"
	ReasonEmpty       = "empty"
)

// AcquisitionError reports a source that could not be resolved into text.
// Detail carries the offending value (status code, content type, size) so
// callers can build an actionable message. Err is the underlying cause
// when one exists.
type AcquisitionError struct {
	Source Source
	Reason string
	Detail string
	Err    error
}

func (e *AcquisitionError) Error() string {
	msg := fmt.Sprintf("acquisition failed: %s %s: %s", e.Source.Type, e.Source.Value, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
