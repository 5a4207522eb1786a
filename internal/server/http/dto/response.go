package dto

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success builds a success envelope with optional payload.
func Success(code int, message string, data any) Envelope {
	return Envelope{Status: "success", Code: code, Message: message, Data: data}
}

// Failure builds an error envelope.
func Failure(code int, message string) Envelope {
	return Envelope{Status: "error", Code: code, Error: message}
}
