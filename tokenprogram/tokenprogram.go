// Package tokenprogram declares the fungible-token capability the core
// consumes as a black box. The real implementation lives in the host's
// token program, external to this module; this package only defines the
// interface the core is written against, plus an in-memory reference
// implementation used by tests.
package tokenprogram

import "errors"

var (
	// ErrInsufficientBalance is returned by Transfer/Burn when the source
	// account does not hold enough of the token.
	ErrInsufficientBalance = errors.New("tokenprogram: insufficient balance")
	// ErrWrongMint is returned when an operation targets an account whose
	// underlying mint does not match the token identifier supplied.
	ErrWrongMint = errors.New("tokenprogram: wrong mint")
	// ErrFrozen is returned when a transfer/burn/mint targets a frozen account.
	ErrFrozen = errors.New("tokenprogram: account frozen")
)

// Program is the synchronous fungible-token capability the core depends on.
// Every method fails atomically on insufficient balance or wrong authority;
// none of them may partially apply.
type Program interface {
	// Transfer moves amount of the token held in from into to. signer must be
	// the owner of from.
	Transfer(from, to [32]byte, tokenID [32]byte, amount uint64, signer [32]byte) error
	// MintTo mints amount of mint into the to account, authorized by
	// mintAuthority.
	MintTo(mint [32]byte, to [32]byte, amount uint64, mintAuthority [32]byte) error
	// Burn destroys amount of mint held in from, authorized by the owner.
	Burn(from [32]byte, mint [32]byte, amount uint64, owner [32]byte) error
	// FreezeAccount freezes account, authorized by freezeAuthority.
	FreezeAccount(account [32]byte, mint [32]byte, freezeAuthority [32]byte) error
	// ThawAccount thaws account, authorized by freezeAuthority.
	ThawAccount(account [32]byte, mint [32]byte, freezeAuthority [32]byte) error
	// AccountMint reports the mint underlying account, used to enforce
	// WrongMint checks before freeze/thaw.
	AccountMint(account [32]byte) (mint [32]byte, ok bool)
	// Supply reports the current circulating supply of mint.
	Supply(mint [32]byte) uint64
	// BalanceOf reports the balance of account.
	BalanceOf(account [32]byte) uint64
}
