package framework

import "strings"

// AggregatedError collects errors from independent steps so the
// caller can fail once with everything that went wrong.
type AggregatedError []error

// Add appends the non-nil errors in errs.
func (e *AggregatedError) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

// Aggregate returns nil when nothing was collected, the sole error
// when exactly one was, and the whole collection otherwise.
func (e AggregatedError) Aggregate() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	}
	return e
}

// Error implements error.
func (e AggregatedError) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
