package models

// Stable message prefixes for API errors. Callers match on these to tell
// failure classes apart without inspecting the error kind.
const (
	MsgRequestFailed = "Request failed"
	MsgInvalidJSON   = "Invalid JSON in response"
)

// Result wraps every response from the FPP API. StatusCode always reflects
// the real HTTP status; Data is an empty container rather than nil when the
// body decoded to JSON null.
type Result struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data"`

	// Raw is the undecoded response body, for callers that want to
	// unmarshal into a typed struct instead of walking Data.
	Raw []byte `json:"-"`
}

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	// ErrNetwork means the request never completed.
	ErrNetwork ErrorKind = iota
	// ErrDecode means a response arrived but its body was not valid JSON.
	ErrDecode
	// ErrHTTPStatus means a well-formed response outside the 200-299 window.
	ErrHTTPStatus
	// ErrValidation means the request was rejected before any network I/O.
	ErrValidation
)

// APIError is the single failure type every layer surfaces. It is never
// retried; upper layers propagate it unchanged to the command dispatch.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}
