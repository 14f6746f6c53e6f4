package types

// APIError is the public error body returned on failed requests.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps APIError for JSON responses.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
