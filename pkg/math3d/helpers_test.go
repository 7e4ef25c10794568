package math3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type approxer[T any] interface {
	ApproxEqual(T) bool
}

func requireApprox[T approxer[T]](t *testing.T, want, got T) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got), "want %v, got %v", want, got)
}

func requireSameRotation(t *testing.T, want, got Quat) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got) || want.ApproxEqual(got.Negate()),
		"want %v (or its negation), got %v", want, got)
}
