package dto

import "time"

// ErrorResponse is the JSON body returned for every non-2xx response.
//
// Fields:
//   - Message: short human-readable summary.
//   - ErrorDetails: underlying error text, omitted when empty.
//   - Timestamp: UTC time the response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid pricing request"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid parameter: time_to_maturity must be finite and > 0, got 0"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error lets ErrorResponse travel as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse; err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
