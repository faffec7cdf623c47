package schedule

import "fmt"

// FormatError reports a malformed time value handed to one of the time
// utilities. It is fatal to the calling operation and never retried.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Value, e.Reason)
}

func newFormatError(value, reason string) error {
	return &FormatError{Value: value, Reason: reason}
}
