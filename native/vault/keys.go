package vault

import (
	"crypto/sha256"
	"encoding/binary"
)

// Address derivation mirrors a program-derived-address scheme: every record
// this core owns is addressed by hashing a fixed label together with any
// disambiguating fields, rather than by an externally supplied key. This
// keeps every lookup a pure function of its arguments, with no registry or
// counter to keep in sync.

var (
	seedConfig               = []byte("config")
	seedVaultAuthority       = []byte("vault_authority")
	seedMintAuthority        = []byte("mint_authority")
	seedFreezeAuthority      = []byte("freeze_authority")
	seedRedeemVaultAuthority = []byte("redeem_vault_authority")
	seedEpoch                = []byte("epoch")
	seedClaim                = []byte("claim")
	seedRedemptionRequest    = []byte("redemption_request")
	seedTokenAccount         = []byte("token_account")
)

func hashLabels(labels ...[]byte) [32]byte {
	h := sha256.New()
	for _, l := range labels {
		h.Write(l)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// ConfigAddress is the storage key of the singleton Config record.
func ConfigAddress() [32]byte {
	return hashLabels(seedConfig)
}

// VaultAuthorityAddress is the derived authority that owns reserve custody.
func VaultAuthorityAddress() [32]byte {
	return hashLabels(seedVaultAuthority)
}

// MintAuthorityAddress is the derived authority permitted to mint receipts.
func MintAuthorityAddress() [32]byte {
	return hashLabels(seedMintAuthority)
}

// FreezeAuthorityAddress is the derived authority permitted to freeze or
// thaw receipt-token accounts.
func FreezeAuthorityAddress() [32]byte {
	return hashLabels(seedFreezeAuthority)
}

// RedeemVaultAuthorityAddress is the derived authority that owns redeem
// custody and releases funds on completed redemptions.
func RedeemVaultAuthorityAddress() [32]byte {
	return hashLabels(seedRedeemVaultAuthority)
}

// EpochAddress is the storage key of the rewards epoch record at index.
func EpochAddress(index uint64) [32]byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], index)
	return hashLabels(seedEpoch, buf[:])
}

// ClaimAddress is the storage key of the claim record for user against the
// epoch addressed by epochAddr.
func ClaimAddress(epochAddr [32]byte, user [32]byte) [32]byte {
	return hashLabels(seedClaim, epochAddr[:], user[:])
}

// RedemptionRequestAddress is the storage key of user's in-flight
// redemption ticket, if any.
func RedemptionRequestAddress(user [32]byte) [32]byte {
	return hashLabels(seedRedemptionRequest, user[:])
}

// UserTokenAccount derives the token account holding owner's balance of
// mint, standing in for an associated-token-account lookup on the host
// ledger. One account per (mint, owner) pair.
func UserTokenAccount(mint [32]byte, owner [32]byte) [32]byte {
	return hashLabels(seedTokenAccount, mint[:], owner[:])
}
