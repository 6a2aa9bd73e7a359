package events

import "vaultmint/core/types"

const (
	// TypeEpochCreated is emitted when a rewards administrator registers a new epoch.
	TypeEpochCreated = "rewards.epoch_created"
	// TypeClaimed is emitted on a successful reward claim.
	TypeClaimed = "rewards.claimed"
)

// EpochCreated records the registration of a new RewardsEpoch.
type EpochCreated struct {
	Index      uint64
	MerkleRoot [32]byte
	Total      uint64
}

func (EpochCreated) EventType() string { return TypeEpochCreated }

func (e EpochCreated) Event() *types.Event {
	return &types.Event{Type: TypeEpochCreated, Attributes: map[string]string{
		"index":      u64String(e.Index),
		"merkleRoot": hex32(e.MerkleRoot),
		"total":      u64String(e.Total),
	}}
}

// Claimed records a successful, single-use reward claim.
type Claimed struct {
	User   [32]byte
	Epoch  uint64
	Amount uint64
}

func (Claimed) EventType() string { return TypeClaimed }

func (e Claimed) Event() *types.Event {
	return &types.Event{Type: TypeClaimed, Attributes: map[string]string{
		"user":   hex32(e.User),
		"epoch":  u64String(e.Epoch),
		"amount": u64String(e.Amount),
	}}
}
