package dto

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Envelope wraps every JSON response body.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(code int, message string, data any) Envelope {
	return Envelope{
		Status:  StatusSuccess,
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Failure(code int, message string) Envelope {
	return Envelope{
		Status:  StatusFailed,
		Code:    code,
		Message: message,
	}
}
