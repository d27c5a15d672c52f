package wizard

import "fmt"

// FlowError is a user-correctable wizard failure: a blocked transition or a
// validation miss. It is surfaced verbatim to the visitor.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &FlowError{Code: "validation", Message: msg}
}

func NewTransitionError(msg string) error {
	return &FlowError{Code: "transition", Message: msg}
}
