// Package rewards implements epoch registration and Merkle-proof-checked
// reward claims against the vault's receipt token.
package rewards

// Epoch is one distribution window: its index and the Merkle root of its
// per-user allocations. Indexes may be registered in any order. After
// creation only Claimed changes, and only while
// vault.Config.EnforceEpochTotals is set.
type Epoch struct {
	Index      uint64
	MerkleRoot [32]byte
	Total      uint64
	CreatedAt  int64
	// Claimed accumulates the amounts minted against this epoch. It is
	// updated, and checked as a ceiling against Total, only while
	// vault.Config.EnforceEpochTotals is set; claims made with the flag off
	// are not counted.
	Claimed uint64
}

// ClaimRecord marks that a given user has claimed against a given epoch.
// Its fields repeat what its address already encodes; the existence of the
// record is the claim evidence.
type ClaimRecord struct {
	Epoch uint64
	User  [32]byte
}
