package booking

import "fmt"

// FlowError is a typed error surfaced by the booking flow so handlers can map
// each kind to the right HTTP treatment.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes used across the flow.
const (
	CodeMissingContext    = "missingContext"
	CodeVendorNotFound    = "vendorNotFound"
	CodeSessionNotFound   = "sessionNotFound"
	CodeGuardViolation    = "guardViolation"
	CodeSubmissionFailed  = "submissionFailed"
	CodeSubmissionPending = "submissionPending"
)

// NewMissingContextError reports that the flow was opened without a service
// or vendor identification.
func NewMissingContextError(msg string) error {
	return &FlowError{Code: CodeMissingContext, Message: msg}
}

// NewVendorNotFoundError includes the vendor id for diagnosis.
func NewVendorNotFoundError(vendorID string) error {
	return &FlowError{Code: CodeVendorNotFound, Message: fmt.Sprintf("vendor %s could not be resolved", vendorID)}
}

func NewSessionNotFoundError(sessionID string) error {
	return &FlowError{Code: CodeSessionNotFound, Message: fmt.Sprintf("booking session %s not found or expired", sessionID)}
}

func NewGuardViolationError(msg string) error {
	return &FlowError{Code: CodeGuardViolation, Message: msg}
}

func NewSubmissionError(msg string) error {
	return &FlowError{Code: CodeSubmissionFailed, Message: msg}
}

// IsFlowCode reports whether err is a FlowError with the given code.
func IsFlowCode(err error, code string) bool {
	fe, ok := err.(*FlowError)
	return ok && fe.Code == code
}
