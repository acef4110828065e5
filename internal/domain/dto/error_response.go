package dto

// ErrorResponse is the envelope for unexpected failures: no data and the
// error message in info.error.
type ErrorResponse struct {
	Data any  `json:"data" swaggertype:"object"`
	Info Info `json:"info"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// cause, rendered as "message: cause".
func NewErrorResponse(message string, err error) ErrorResponse {
	msg := message
	if err != nil {
		msg = message + ": " + err.Error()
	}
	return ErrorResponse{Info: Info{Error: msg}}
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if s, ok := e.Info.Error.(string); ok {
		return s
	}
	return ""
}
