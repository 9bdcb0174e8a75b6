package ingestion

import "fmt"

// ExtractError represents a posting file that could not be read or converted
type ExtractError struct {
	Path    string
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	where := e.Path
	if e.Format != "" {
		where = fmt.Sprintf("%s (%s)", e.Path, e.Format)
	}
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error: %s: %s", where, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
