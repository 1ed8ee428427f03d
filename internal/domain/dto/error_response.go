package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
//
// It doubles as an error value so handlers and middleware can pass it along
// the gin error chain unchanged.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to load page"`
	ErrorDetails string    `json:"error,omitempty" example:"statistics backend error 503: Service Unavailable"`
	Timestamp    time.Time `json:"timestamp" example:"2024-09-01T12:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil, in which case no details are included.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
