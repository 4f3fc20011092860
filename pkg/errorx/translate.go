package errorx

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"gorm.io/gorm"
)

// FromDB converts an error returned by the store into the closest Error. It is
// the only place where storage specific errors are interpreted.
func FromDB(err error) Error {
	var errx Error
	switch {
	case err == nil:
		return Error{}
	case errors.As(err, &errx):
		return errx
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(NotFound, ReasonNotFound, "Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(AlreadyExists, ReasonConflict, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(AlreadyExists, ReasonConflict, "Record is still referenced")
	case isConnectionError(err):
		return New(Unavailable, ReasonDBUnavailable, "Database is currently unavailable")
	default:
		return Unknown
	}
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
