package vault

import "vaultmint/core/events"

// FreezeTokenAccount freezes target, which must be a receipt-token account.
func (e *Engine) FreezeTokenAccount(signer [32]byte, target [32]byte) error {
	start := e.now()
	err := e.setFrozen(signer, target, true)
	e.observe("freeze_token_account", err, start)
	return err
}

// ThawTokenAccount thaws target, which must be a receipt-token account.
func (e *Engine) ThawTokenAccount(signer [32]byte, target [32]byte) error {
	start := e.now()
	err := e.setFrozen(signer, target, false)
	e.observe("thaw_token_account", err, start)
	return err
}

func (e *Engine) setFrozen(signer [32]byte, target [32]byte, frozen bool) error {
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := RequireFreezeAdmin(cfg, signer); err != nil {
		return err
	}
	mint, ok := e.token.AccountMint(target)
	if !ok || mint != cfg.ReceiptTokenID {
		return ErrWrongMint
	}

	if frozen {
		if err := e.token.FreezeAccount(target, cfg.ReceiptTokenID, FreezeAuthority()); err != nil {
			return err
		}
		e.emit(events.Frozen{Target: target})
		return nil
	}
	if err := e.token.ThawAccount(target, cfg.ReceiptTokenID, FreezeAuthority()); err != nil {
		return err
	}
	e.emit(events.Thawed{Target: target})
	return nil
}
