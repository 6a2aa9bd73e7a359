package events

import "vaultmint/core/types"

const (
	// TypeDeposited is emitted whenever a deposit mints receipts 1:1.
	TypeDeposited = "vault.deposited"
	// TypeRedeemRequested is emitted when a redemption ticket is opened.
	TypeRedeemRequested = "vault.redeem_requested"
	// TypeRedeemCompleted is emitted when a redemption ticket is settled.
	TypeRedeemCompleted = "vault.redeem_completed"
	// TypeFrozen is emitted when a receipt-holding account is frozen.
	TypeFrozen = "vault.frozen"
	// TypeThawed is emitted when a receipt-holding account is thawed.
	TypeThawed = "vault.thawed"
	// TypeExternalMint is emitted when the configured external mint program
	// caller mints receipt tokens directly into a destination account.
	TypeExternalMint = "vault.external_mint"
)

// Deposited records a completed deposit.
type Deposited struct {
	User   [32]byte
	Amount uint64
}

func (Deposited) EventType() string { return TypeDeposited }

func (e Deposited) Event() *types.Event {
	return &types.Event{Type: TypeDeposited, Attributes: map[string]string{
		"user":   hex32(e.User),
		"amount": u64String(e.Amount),
	}}
}

// RedeemRequested records the creation of a RedemptionRequest ticket.
type RedeemRequested struct {
	User   [32]byte
	Amount uint64
}

func (RedeemRequested) EventType() string { return TypeRedeemRequested }

func (e RedeemRequested) Event() *types.Event {
	return &types.Event{Type: TypeRedeemRequested, Attributes: map[string]string{
		"user":   hex32(e.User),
		"amount": u64String(e.Amount),
	}}
}

// RedeemCompleted records the settlement of a RedemptionRequest ticket.
type RedeemCompleted struct {
	User   [32]byte
	Amount uint64
}

func (RedeemCompleted) EventType() string { return TypeRedeemCompleted }

func (e RedeemCompleted) Event() *types.Event {
	return &types.Event{Type: TypeRedeemCompleted, Attributes: map[string]string{
		"user":   hex32(e.User),
		"amount": u64String(e.Amount),
	}}
}

// Frozen records that a receipt-token account was frozen.
type Frozen struct {
	Target [32]byte
}

func (Frozen) EventType() string { return TypeFrozen }

func (e Frozen) Event() *types.Event {
	return &types.Event{Type: TypeFrozen, Attributes: map[string]string{"target": hex32(e.Target)}}
}

// Thawed records that a receipt-token account was thawed.
type Thawed struct {
	Target [32]byte
}

func (Thawed) EventType() string { return TypeThawed }

func (e Thawed) Event() *types.Event {
	return &types.Event{Type: TypeThawed, Attributes: map[string]string{"target": hex32(e.Target)}}
}

// ExternalMint records a mint issued through the external mint program path
// rather than through Deposit.
type ExternalMint struct {
	Caller      [32]byte
	Destination [32]byte
	Amount      uint64
}

func (ExternalMint) EventType() string { return TypeExternalMint }

func (e ExternalMint) Event() *types.Event {
	return &types.Event{Type: TypeExternalMint, Attributes: map[string]string{
		"caller":      hex32(e.Caller),
		"destination": hex32(e.Destination),
		"amount":      u64String(e.Amount),
	}}
}
