package vault

import (
	"vaultmint/core/events"
	"vaultmint/observability"
)

// ExternalProgramMint mints receipt tokens directly into destination on
// behalf of an external caller, bypassing the reserve transfer Deposit
// requires. Only the single caller recorded in Config.AllowedMintProgramCaller
// may invoke it; a zero AllowedMintProgramCaller disables the path entirely.
func (e *Engine) ExternalProgramMint(caller [32]byte, destination [32]byte, amount uint64) error {
	start := e.now()
	err := e.externalProgramMint(caller, destination, amount)
	e.observe("external_program_mint", err, start)
	return err
}

func (e *Engine) externalProgramMint(caller [32]byte, destination [32]byte, amount uint64) error {
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
	var zero [32]byte
	if cfg.AllowedMintProgramCaller == zero || caller != cfg.AllowedMintProgramCaller {
		return ErrUnauthorizedMintProgramCaller
	}
	mint, ok := e.token.AccountMint(destination)
	if !ok || mint != cfg.ReceiptTokenID {
		return ErrWrongMint
	}

	if err := e.token.MintTo(cfg.ReceiptTokenID, destination, amount, MintAuthority()); err != nil {
		return err
	}

	observability.CoreMetrics().SetReceiptSupply(e.token.Supply(cfg.ReceiptTokenID))
	e.emit(events.ExternalMint{Caller: caller, Destination: destination, Amount: amount})
	return nil
}
