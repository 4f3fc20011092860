package errorx

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{BadRequest, http.StatusBadRequest},
		{Unauthenticated, http.StatusUnauthorized},
		{PermissionDenied, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{AlreadyExists, http.StatusConflict},
		{Unavailable, http.StatusServiceUnavailable},
		{Internal, http.StatusInternalServerError},
		{Code(42), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.code.HTTPStatus(), "code %d", tt.code)
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(NotFound, ReasonUserNotFound, "User %s not found", "u1"))

	require.ErrorIs(t, err, New(NotFound, ReasonUserNotFound, "another message"))
	require.NotErrorIs(t, err, New(NotFound, ReasonThemeNotFound, "User u1 not found"))
	require.Equal(t, "wrapped: User u1 not found", err.Error())
}

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"not found", gorm.ErrRecordNotFound, NotFound},
		{"duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), AlreadyExists},
		{"foreign key", gorm.ErrForeignKeyViolated, AlreadyExists},
		{"bad connection", driver.ErrBadConn, Unavailable},
		{"unknown", errors.New("boom"), Internal},
		{"already translated", New(BadRequest, ReasonInvalidRequestBody, "bad"), BadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromDB(tt.err).Code)
		})
	}
}
