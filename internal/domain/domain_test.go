package domain

import (
	"testing"

	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func requireErrorReason(t *testing.T, err error, code errorx.Code, reason string) {
	t.Helper()

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
	require.Equal(t, reason, errx.Reason)
}

func ptr[T any](v T) *T {
	return &v
}
