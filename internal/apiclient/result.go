package apiclient

type (
	// Result is the uniform outcome of every client operation. Exactly one
	// variant is populated: a successful call carries the decoded payload,
	// a failed one carries a user-facing message. Operations never return
	// an error alongside it; transport, application and decode failures
	// are all folded into the failure variant.
	Result[T any] struct {
		ok      bool
		payload T
		message string
	}
)

func Success[T any](payload T) Result[T] {
	return Result[T]{ok: true, payload: payload}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

func (r Result[T]) OK() bool {
	return r.ok
}

// Payload returns the success payload. It is the zero value when the
// result is a failure.
func (r Result[T]) Payload() T {
	return r.payload
}

// Message returns the user-facing failure message, empty on success.
func (r Result[T]) Message() string {
	return r.message
}
