package vault

// Authority identifies one of the core's derived signing authorities. None
// of these correspond to an externally held private key: the host runtime
// recognizes them as valid signers for the specific instructions each is
// scoped to, derived deterministically from its label.
type Authority [32]byte

// VaultAuthority is the derived authority that owns reserve custody. No
// operation in this package signs with it: Deposit moves reserve into
// custody under the user's own signature.
func VaultAuthority() Authority {
	return Authority(VaultAuthorityAddress())
}

// MintAuthority signs receipt-token mint instructions.
func MintAuthority() Authority {
	return Authority(MintAuthorityAddress())
}

// FreezeAuthority signs freeze/thaw instructions against receipt-token
// accounts.
func FreezeAuthority() Authority {
	return Authority(FreezeAuthorityAddress())
}

// RedeemVaultAuthority signs transfers out of redeem custody on redemption
// completion.
func RedeemVaultAuthority() Authority {
	return Authority(RedeemVaultAuthorityAddress())
}
