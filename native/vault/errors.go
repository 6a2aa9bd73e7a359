package vault

import "errors"

// Sentinel errors returned unwrapped by vault operations, so callers can
// branch on outcome with errors.Is instead of string matching. Errors from
// the token program (other than the ones Deposit and CompleteRedeem map to
// ErrInsufficientUserReserve and ErrRedeemUnfunded) and from the state store
// are returned unchanged.
var (
	ErrPaused                        = errors.New("vault: paused")
	ErrUnauthorizedUpgrade           = errors.New("vault: signer is not the upgrade authority")
	ErrUnauthorizedFreeze            = errors.New("vault: signer is not a freeze admin")
	ErrUnauthorizedRewards           = errors.New("vault: signer is not a rewards admin")
	ErrTooManyAdministrators         = errors.New("vault: admin list exceeds maximum size")
	ErrDuplicateAdministrator        = errors.New("vault: duplicate administrator key")
	ErrInvalidAmount                 = errors.New("vault: amount must be positive")
	ErrCapExceeded                   = errors.New("vault: receipt supply cap exceeded")
	ErrPendingRedeemExists           = errors.New("vault: a redemption request already exists for this user")
	ErrNoPendingRedeem               = errors.New("vault: no pending redemption request")
	ErrRedeemUnfunded                = errors.New("vault: redeem custody balance insufficient")
	ErrWrongMint                     = errors.New("vault: account mint does not match expected token")
	ErrConfigMismatch                = errors.New("vault: supplied config address does not match derived address")
	ErrConfigAlreadyExists           = errors.New("vault: config already initialized")
	ErrConfigNotFound                = errors.New("vault: config not initialized")
	ErrInvalidTokenID                = errors.New("vault: token identifier must be non-zero")
	ErrInsufficientUserReserve       = errors.New("vault: insufficient user reserve balance")
	ErrUnauthorizedMintProgramCaller = errors.New("vault: caller is not the configured external mint program")
)
