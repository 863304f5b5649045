package llm

// ResultKind tags a model result
type ResultKind string

const (
	ResultCompletion ResultKind = "completion"
	ResultFailure    ResultKind = "failure"
)

// Placeholder text returned when a response carries neither a completion nor a message
const NoResultText = "No result"

// FailurePrefix is prepended to model-reported failure messages when rendered as text
const FailurePrefix = "ERROR: "

// Result is the outcome of a language-model invocation. A Failure is a
// well-formed response in which the model (or the endpoint) reported an error
// message instead of a completion.
type Result struct {
	Kind       ResultKind `json:"kind"`
	Text       string     `json:"text"`
	Message    string     `json:"message,omitempty"` // raw failure message, Failure only
	StatusCode int        `json:"status_code,omitempty"`
}

// NewCompletion creates a completion result
func NewCompletion(text string) *Result {
	return &Result{Kind: ResultCompletion, Text: text}
}

// NewFailure creates a failure result. Its Text is the message with FailurePrefix.
func NewFailure(message string) *Result {
	return &Result{Kind: ResultFailure, Text: FailurePrefix + message, Message: message}
}

// IsFailure reports whether the result is a failure
func (r *Result) IsFailure() bool {
	return r != nil && r.Kind == ResultFailure
}

// String renders the result the way hosts expecting a plain string see it
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	return r.Text
}

// Err converts a failure into an *Error, or returns nil for completions
func (r *Result) Err() error {
	if !r.IsFailure() {
		return nil
	}
	return &Error{
		Kind:       ErrModel,
		Code:       CodeModelFailure,
		Message:    r.Message,
		StatusCode: r.StatusCode,
	}
}
