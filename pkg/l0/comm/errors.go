package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoreSensors indicates a feedback frame carried no core
	// sensor sub-payload.
	ErrNoCoreSensors = errors.New("no core sensors sub-payload")
	// ErrNoBaseControl indicates a command frame carried no base
	// control sub-payload.
	ErrNoBaseControl = errors.New("no base control sub-payload")
	// ErrPayloadTooLarge indicates the payload exceeds the one-byte
	// length field.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// TruncatedError indicates a sub-payload extends past the end of the
// frame payload.
type TruncatedError struct {
	ID byte
}

// Error implements error.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated sub-payload %#02x", e.ID)
}
