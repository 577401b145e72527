// Package error defines domain-specific errors for the FinTrack application.
package error

// RequestErrorCode defines error codes for request-level failures
// that are not tied to a specific entity.
type RequestErrorCode string

const (
	ErrCodeRateLimited    RequestErrorCode = "REQ-010001"
	ErrCodeInvalidQuery   RequestErrorCode = "REQ-010002"
	ErrCodeInternalServer RequestErrorCode = "REQ-050001"
)
