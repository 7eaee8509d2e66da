package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest_Deterministic(t *testing.T) {
	a := Digest([]byte("hello"))
	b := Digest([]byte("hello"))
	require.Equal(t, a, b)
}

func TestDigest_Distinguishes(t *testing.T) {
	a := Digest([]byte("hello"))
	b := Digest([]byte("world"))
	require.NotEqual(t, a, b)
}
