package commons

// Response is what a workflow reports back to the presentation layer.
// Retryable marks failures where the same intent may be submitted again.
type Response[T any] struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Data      *T       `json:"data,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

func RetryableErrorResponse[T any](message string, errors ...string) Response[T] {
	resp := ErrorResponse[T](message, errors...)
	resp.Retryable = true
	return resp
}
