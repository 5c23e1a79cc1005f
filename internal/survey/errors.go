package survey

import "fmt"

// MalformedRecordError reports a survey row whose required fields are
// missing, non-numeric where a number is required, or outside the known
// vocabulary. Rows that trigger it cannot be skipped safely: dropping a
// participant silently changes everyone else's match, so the whole run
// aborts.
type MalformedRecordError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed survey record at line %d: field %q value %q: %s", e.Line, e.Field, e.Value, e.Reason)
}
