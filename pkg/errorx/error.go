package errorx

import "fmt"

var Unknown = Error{Code: Internal, Reason: ReasonInternal, Message: "Request failed"}

type Error struct {
	Code    Code
	Reason  string
	Message string
}

func New(code Code, reason string, format string, args ...any) Error {
	return Error{Code: code, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	return e.Message
}

// Is matches errors by code and reason so tests and callers can compare
// against a freshly built Error without caring about the message.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return e.Code == t.Code && e.Reason == t.Reason
}
