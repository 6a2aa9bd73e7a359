// Package merkle implements the on-chain proof verifier: leaf construction,
// sorted-pair inner hashing, and proof verification against a stored root.
// Tree construction is deliberately kept out of the hot path — it runs
// off-chain — but a small builder is provided below for tests and for
// off-chain callers that want a reference implementation compatible with
// this verifier.
package merkle

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

// MaxProofLength bounds the accepted proof length, rejecting pathological
// inputs before any hashing occurs.
const MaxProofLength = 30

// ErrInvalidProof is returned when a proof fails to reconstruct the expected
// root, or when it exceeds MaxProofLength.
var ErrInvalidProof = errors.New("merkle: invalid proof")

// Leaf computes the 48-byte preimage digest for a claim by user of amount in
// epoch index: SHA-256(user || amount_le || index_le).
func Leaf(user [32]byte, amount uint64, index uint64) [32]byte {
	var preimage [48]byte
	copy(preimage[:32], user[:])
	binary.LittleEndian.PutUint64(preimage[32:40], amount)
	binary.LittleEndian.PutUint64(preimage[40:48], index)
	return sha256.Sum256(preimage[:])
}

// HashPair computes the sorted-pair inner-node hash SHA-256(min(a,b)||max(a,b)).
// Sorting removes any need to carry left/right position bits in a proof.
func HashPair(a, b [32]byte) [32]byte {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return hashConcat(a, b)
	}
	return hashConcat(b, a)
}

func hashConcat(a, b [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha256.Sum256(buf[:])
}

// Verify walks proof from leaf, folding each sibling with the sorted-pair
// rule, and reports whether the final digest equals root.
func Verify(leaf [32]byte, proof [][32]byte, root [32]byte) error {
	if len(proof) > MaxProofLength {
		return ErrInvalidProof
	}
	current := leaf
	for _, sibling := range proof {
		current = HashPair(current, sibling)
	}
	if current != root {
		return ErrInvalidProof
	}
	return nil
}
