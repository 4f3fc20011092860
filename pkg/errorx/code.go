package errorx

import "net/http"

type Code int

const (
	BadRequest       Code = 100001
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008
)

var httpStatus = map[Code]int{
	BadRequest:       http.StatusBadRequest,
	PermissionDenied: http.StatusForbidden,
	NotFound:         http.StatusNotFound,
	Unauthenticated:  http.StatusUnauthorized,
	AlreadyExists:    http.StatusConflict,
	Internal:         http.StatusInternalServerError,
	Unavailable:      http.StatusServiceUnavailable,
}

// HTTPStatus returns the transport status of the code. Unknown codes are
// reported as internal errors.
func (c Code) HTTPStatus() int {
	if status, ok := httpStatus[c]; ok {
		return status
	}

	return http.StatusInternalServerError
}
