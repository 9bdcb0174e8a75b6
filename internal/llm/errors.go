package llm

import "fmt"

// APICallError represents an error talking to the model provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ResponseError represents a model response that could not be used
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid model response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid model response: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
