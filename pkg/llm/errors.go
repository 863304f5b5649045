// Error types and handling
package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors raised while building, signing or sending an invocation
type ErrorKind int

const (
	ErrConfiguration ErrorKind = iota // missing credentials, empty region or model
	ErrSigning                        // malformed endpoint, request could not be signed
	ErrNetwork                        // transport failure, propagated unchanged
	ErrResponseShape                  // response body not in the expected shape
	ErrModel                          // model reported a failure (strict mode only)
)

var errorKindNames = [...]string{
	ErrConfiguration: "configuration_error",
	ErrSigning:       "signing_error",
	ErrNetwork:       "network_error",
	ErrResponseShape: "response_shape_error",
	ErrModel:         "model_error",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ErrEmbeddingUnavailable is matched (with errors.Is) by errors returned when an
// embedding response does not carry an "embedding" field.
var ErrEmbeddingUnavailable = errors.New("embedding unavailable")

// Error represents a standardized error
type Error struct {
	Kind       ErrorKind `json:"kind"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
	Raw        []byte    `json:"-"` // raw response body, for diagnostics
	Cause      error     `json:"-"`
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports embedding-unavailable errors as ErrEmbeddingUnavailable
func (e *Error) Is(target error) bool {
	return target == ErrEmbeddingUnavailable && e.Code == CodeEmbeddingUnavailable
}

// Error codes used across the module
const (
	CodeMissingCredentials   = "missing_credentials"
	CodeInvalidConfig        = "invalid_config"
	CodeInvalidEndpoint      = "invalid_endpoint"
	CodeSigningFailed        = "signing_failed"
	CodeRequestFailed        = "request_failed"
	CodeInvalidJSON          = "invalid_json"
	CodeEmbeddingUnavailable = "embedding_unavailable"
	CodeModelFailure         = "model_failure"
)

// NewConfigurationError creates an error raised at construction time
func NewConfigurationError(code, message string) *Error {
	return &Error{Kind: ErrConfiguration, Code: code, Message: message}
}

// NewSigningError creates an error raised before a request is sent
func NewSigningError(message string, cause error) *Error {
	code := CodeSigningFailed
	if cause == nil {
		code = CodeInvalidEndpoint
	}
	return &Error{Kind: ErrSigning, Code: code, Message: message, Cause: cause}
}

// NewNetworkError wraps a transport failure
func NewNetworkError(cause error) *Error {
	return &Error{Kind: ErrNetwork, Code: CodeRequestFailed, Message: cause.Error(), Cause: cause}
}

// NewResponseShapeError creates an error carrying the raw response payload
func NewResponseShapeError(code, message string, status int, raw []byte, cause error) *Error {
	return &Error{
		Kind:       ErrResponseShape,
		Code:       code,
		Message:    message,
		StatusCode: status,
		Raw:        raw,
		Cause:      cause,
	}
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
