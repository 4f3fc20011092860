package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Mode string

var (
	ModeLight = New(Mode("light"))
	ModeDark  = New(Mode("dark"))
)

func TestToEnum(t *testing.T) {
	v, err := ToEnum[Mode]("dark")
	require.NoError(t, err)
	require.Equal(t, ModeDark, v)

	_, err = ToEnum[Mode]("Dark")
	require.Error(t, err)

	_, err = ToEnum[Mode]("")
	require.Error(t, err)
}

func TestToEnum_UnregisteredType(t *testing.T) {
	type Unknown string

	_, err := ToEnum[Unknown]("x")
	require.Error(t, err)
}

func TestValues(t *testing.T) {
	// Registering twice must not duplicate the member.
	New(Mode("light"))

	require.Equal(t, []Mode{ModeLight, ModeDark}, Values[Mode]())
}
