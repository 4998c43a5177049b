package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsSaltedPerCall(t *testing.T) {
	h := NewHasher(DefaultParams())
	a, err := h.Hash("P1@aaaa")
	require.NoError(t, err)
	b, err := h.Hash("P1@aaaa")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerify(t *testing.T) {
	h := NewHasher(DefaultParams())
	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)

	require.True(t, h.Verify("correct horse", encoded))
	require.False(t, h.Verify("wrong horse", encoded))
	require.False(t, h.Verify("", encoded))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(DefaultParams())
	for _, encoded := range []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2id$v=99$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	} {
		require.False(t, h.Verify("anything", encoded), "input %q", encoded)
	}
}
