package types

// SuccessEnvelope is the wire shape for every successful response.
type SuccessEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// ErrorEnvelope is the wire shape for every failed response.
type ErrorEnvelope struct {
	Error  string `json:"error"`
	Errors any    `json:"errors,omitempty"`
}
