// Package vault implements authority derivation, authorization guards, the
// configuration registry, the deposit/redeem engine, and the freeze
// controller for the vault-and-mint core.
package vault

// Config is the singleton configuration record. Exactly one instance exists,
// addressed by ConfigAddress().
type Config struct {
	ReserveTokenID   [32]byte
	ReceiptTokenID   [32]byte
	ReserveCustody   [32]byte
	RedeemCustody    [32]byte
	FreezeAdmins     [][32]byte
	RewardsAdmins    [][32]byte
	Paused           bool
	ReceiptSupplyCap uint64
	Version          uint64
	// EnforceEpochTotals, when set, makes native/rewards track a running
	// claimed-sum per epoch and reject claims that would push it past the
	// epoch's recorded total. Off by default.
	EnforceEpochTotals bool
	// AllowedMintProgramCaller is the sole caller permitted to invoke
	// ExternalProgramMint. A zero value disables the capability entirely.
	AllowedMintProgramCaller [32]byte
}

// MaxAdmins bounds the size of both administrator sets.
const MaxAdmins = 5

// Clone returns a deep copy of the configuration for defensive use by callers.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.FreezeAdmins = append([][32]byte(nil), c.FreezeAdmins...)
	out.RewardsAdmins = append([][32]byte(nil), c.RewardsAdmins...)
	return &out
}

// RedemptionRequest is the per-user in-flight redemption ticket. At most one
// exists per user at any time.
type RedemptionRequest struct {
	User      [32]byte
	Amount    uint64
	CreatedAt int64
}
