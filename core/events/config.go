package events

import "vaultmint/core/types"

const (
	// TypeConfigInitialized is emitted once, when the singleton Config is created.
	TypeConfigInitialized = "config.initialized"
	// TypeConfigUpdated is emitted on every subsequent Config mutation.
	TypeConfigUpdated = "config.updated"
)

// ConfigInitialized records the creation of the singleton configuration
// record.
type ConfigInitialized struct {
	ReserveTokenID  [32]byte
	ReceiptTokenID  [32]byte
	ReserveCustody  [32]byte
	RedeemCustody   [32]byte
	FreezeAdmins    [][32]byte
	RewardsAdmins   [][32]byte
	UpgradeAuthority [32]byte
}

// EventType implements Event.
func (ConfigInitialized) EventType() string { return TypeConfigInitialized }

// Event converts the struct into the generic attribute-bag representation.
func (e ConfigInitialized) Event() *types.Event {
	return &types.Event{
		Type: TypeConfigInitialized,
		Attributes: map[string]string{
			"reserveTokenId": hex32(e.ReserveTokenID),
			"receiptTokenId": hex32(e.ReceiptTokenID),
			"reserveCustody": hex32(e.ReserveCustody),
			"redeemCustody":  hex32(e.RedeemCustody),
			"freezeAdmins":     hexList(e.FreezeAdmins),
			"rewardsAdmins":    hexList(e.RewardsAdmins),
			"upgradeAuthority": hex32(e.UpgradeAuthority),
		},
	}
}

// ConfigUpdated records a mutation of the Config singleton: a parameter
// change, or an update to the freeze or rewards administrator sets.
type ConfigUpdated struct {
	PreviousVersion uint64
	NewVersion      uint64
	Field           string
}

// EventType implements Event.
func (ConfigUpdated) EventType() string { return TypeConfigUpdated }

// Event converts the struct into the generic attribute-bag representation.
func (e ConfigUpdated) Event() *types.Event {
	return &types.Event{
		Type: TypeConfigUpdated,
		Attributes: map[string]string{
			"previousVersion": u64String(e.PreviousVersion),
			"newVersion":      u64String(e.NewVersion),
			"field":           e.Field,
		},
	}
}
