// Package selection applies thresholds and bucket limits to ranked assets
// before they are handed to prompt builders.
package selection

import "fmt"

// Error represents invalid selection options
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
