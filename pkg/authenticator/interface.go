package authenticator

import "errors"

// ErrTokenInvalid is returned for every verification failure: bad signature,
// unexpected algorithm, malformed or expired token.
var ErrTokenInvalid = errors.New("token is invalid")

type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
