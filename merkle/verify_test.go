package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyTwoLeafTree(t *testing.T) {
	var userA, userB [32]byte
	userA[0] = 0xAA
	userB[0] = 0xBB

	l1 := Leaf(userA, 500, 7)
	l2 := Leaf(userB, 250, 7)

	tree, err := NewTree([][32]byte{l1, l2})
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)
	require.NoError(t, Verify(l1, proof, tree.Root()))

	// Wrong sibling fails.
	require.ErrorIs(t, Verify(l1, [][32]byte{l1}, tree.Root()), ErrInvalidProof)
}

func TestVerifyRejectsOversizedProof(t *testing.T) {
	var leaf, root [32]byte
	proof := make([][32]byte, MaxProofLength+1)
	require.ErrorIs(t, Verify(leaf, proof, root), ErrInvalidProof)
}

func TestHashPairIsOrderInsensitive(t *testing.T) {
	var a, b [32]byte
	a[0] = 1
	b[0] = 2
	require.Equal(t, HashPair(a, b), HashPair(b, a))
}

func TestLeafDeterministic(t *testing.T) {
	var user [32]byte
	user[3] = 9
	require.Equal(t, Leaf(user, 42, 1), Leaf(user, 42, 1))
	require.NotEqual(t, Leaf(user, 42, 1), Leaf(user, 43, 1))
	require.NotEqual(t, Leaf(user, 42, 1), Leaf(user, 42, 2))
}
