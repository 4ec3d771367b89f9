package extractor

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when a selector matches zero nodes. The request was
// well-formed and fully executed; this is a not-found outcome, not a fault.
var ErrNoMatch = errors.New("extractor.no_match")

// SelectorError reports a selector expression that failed to compile.
type SelectorError struct {
	Selector string
	Detail   string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %s", e.Selector, e.Detail)
}
