package vault

import (
	"vaultmint/core/events"
	"vaultmint/observability"
)

// Deposit transfers amount of reserve token from user into custody and
// mints an equal amount of receipt token to user.
func (e *Engine) Deposit(user [32]byte, amount uint64) error {
	start := e.now()
	err := e.deposit(user, amount)
	e.observe("deposit", err, start)
	return err
}

func (e *Engine) deposit(user [32]byte, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := RequireNotPaused(cfg); err != nil {
		return err
	}
	if cfg.ReceiptSupplyCap > 0 {
		current := e.token.Supply(cfg.ReceiptTokenID)
		if current+amount > cfg.ReceiptSupplyCap {
			return ErrCapExceeded
		}
	}

	userReserveAcct := UserTokenAccount(cfg.ReserveTokenID, user)
	if err := e.token.Transfer(userReserveAcct, cfg.ReserveCustody, cfg.ReserveTokenID, amount, user); err != nil {
		return ErrInsufficientUserReserve
	}
	userReceiptAcct := UserTokenAccount(cfg.ReceiptTokenID, user)
	if err := e.token.MintTo(cfg.ReceiptTokenID, userReceiptAcct, amount, MintAuthority()); err != nil {
		return err
	}

	observability.CoreMetrics().SetReceiptSupply(e.token.Supply(cfg.ReceiptTokenID))
	e.emit(events.Deposited{User: user, Amount: amount})
	return nil
}

// RequestRedeem burns amount of receipt token from user and opens a
// redemption ticket for later completion. Fails if a ticket already exists
// for user.
func (e *Engine) RequestRedeem(user [32]byte, amount uint64) error {
	start := e.now()
	err := e.requestRedeem(user, amount)
	e.observe("request_redeem", err, start)
	return err
}

func (e *Engine) requestRedeem(user [32]byte, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := RequireNotPaused(cfg); err != nil {
		return err
	}

	addr := RedemptionRequestAddress(user)
	exists, err := e.state.Has(addr[:])
	if err != nil {
		return err
	}
	if exists {
		return ErrPendingRedeemExists
	}

	userReceiptAcct := UserTokenAccount(cfg.ReceiptTokenID, user)
	if err := e.token.Burn(userReceiptAcct, cfg.ReceiptTokenID, amount, user); err != nil {
		return err
	}

	ticket := &RedemptionRequest{User: user, Amount: amount, CreatedAt: e.now().Unix()}
	created, err := e.state.CreateIfAbsent(addr[:], ticket)
	if err != nil {
		return err
	}
	if !created {
		return ErrPendingRedeemExists
	}

	observability.CoreMetrics().SetReceiptSupply(e.token.Supply(cfg.ReceiptTokenID))
	e.emit(events.RedeemRequested{User: user, Amount: amount})
	return nil
}

// CompleteRedeem settles user's outstanding redemption ticket, transferring
// reserve from redeem custody back to user and destroying the ticket. Any
// rewards administrator may call this.
func (e *Engine) CompleteRedeem(signer [32]byte, user [32]byte) error {
	start := e.now()
	err := e.completeRedeem(signer, user)
	e.observe("complete_redeem", err, start)
	return err
}

func (e *Engine) completeRedeem(signer [32]byte, user [32]byte) error {
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := RequireNotPaused(cfg); err != nil {
		return err
	}
	if err := RequireRewardsAdmin(cfg, signer); err != nil {
		return err
	}

	addr := RedemptionRequestAddress(user)
	var ticket RedemptionRequest
	found, err := e.state.KVGet(addr[:], &ticket)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoPendingRedeem
	}

	if e.token.BalanceOf(cfg.RedeemCustody) < ticket.Amount {
		return ErrRedeemUnfunded
	}

	userReserveAcct := UserTokenAccount(cfg.ReserveTokenID, user)
	if err := e.token.Transfer(cfg.RedeemCustody, userReserveAcct, cfg.ReserveTokenID, ticket.Amount, RedeemVaultAuthority()); err != nil {
		return ErrRedeemUnfunded
	}

	if err := e.state.KVDelete(addr[:]); err != nil {
		return err
	}

	e.emit(events.RedeemCompleted{User: user, Amount: ticket.Amount})
	return nil
}
