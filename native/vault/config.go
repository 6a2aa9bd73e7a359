package vault

import (
	"vaultmint/core/events"
)

// Initialize creates the singleton configuration record. It may run exactly
// once; a second call fails with ErrConfigAlreadyExists.
func (e *Engine) Initialize(signer [32]byte, reserveTokenID, receiptTokenID, reserveCustody, redeemCustody [32]byte, freezeAdmins, rewardsAdmins [][32]byte) error {
	start := e.now()
	err := e.initialize(signer, reserveTokenID, receiptTokenID, reserveCustody, redeemCustody, freezeAdmins, rewardsAdmins)
	e.observe("initialize", err, start)
	return err
}

func (e *Engine) initialize(signer [32]byte, reserveTokenID, receiptTokenID, reserveCustody, redeemCustody [32]byte, freezeAdmins, rewardsAdmins [][32]byte) error {
	if err := e.requireUpgradeAuthority(signer); err != nil {
		return err
	}
	var zero [32]byte
	if reserveTokenID == zero || receiptTokenID == zero {
		return ErrInvalidTokenID
	}
	if err := validateAdminSet(freezeAdmins); err != nil {
		return err
	}
	if err := validateAdminSet(rewardsAdmins); err != nil {
		return err
	}

	cfg := &Config{
		ReserveTokenID:   reserveTokenID,
		ReceiptTokenID:   receiptTokenID,
		ReserveCustody:   reserveCustody,
		RedeemCustody:    redeemCustody,
		FreezeAdmins:     append([][32]byte(nil), freezeAdmins...),
		RewardsAdmins:    append([][32]byte(nil), rewardsAdmins...),
		Paused:           false,
		ReceiptSupplyCap: 0,
		Version:          0,
	}
	addr := ConfigAddress()
	created, err := e.state.CreateIfAbsent(addr[:], cfg)
	if err != nil {
		return err
	}
	if !created {
		return ErrConfigAlreadyExists
	}

	e.emit(events.ConfigInitialized{
		ReserveTokenID:   reserveTokenID,
		ReceiptTokenID:   receiptTokenID,
		ReserveCustody:   reserveCustody,
		RedeemCustody:    redeemCustody,
		FreezeAdmins:     cfg.FreezeAdmins,
		RewardsAdmins:    cfg.RewardsAdmins,
		UpgradeAuthority: e.upgradeAuthority,
	})
	return nil
}

// ConfigUpdate carries the optional fields accepted by UpdateConfig. A nil
// pointer field leaves the corresponding Config value untouched.
type ConfigUpdate struct {
	ReserveCustody           *[32]byte
	RedeemCustody            *[32]byte
	SupplyCap                *uint64
	Paused                   *bool
	AllowedMintProgramCaller *[32]byte
}

// UpdateConfig applies a partial update to the configuration singleton,
// incrementing its version.
func (e *Engine) UpdateConfig(signer [32]byte, update ConfigUpdate) error {
	start := e.now()
	err := e.updateConfig(signer, update)
	e.observe("update_config", err, start)
	return err
}

func (e *Engine) updateConfig(signer [32]byte, update ConfigUpdate) error {
	if err := e.requireUpgradeAuthority(signer); err != nil {
		return err
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	field := "none"
	if update.ReserveCustody != nil {
		cfg.ReserveCustody = *update.ReserveCustody
		field = "reserveCustody"
	}
	if update.RedeemCustody != nil {
		cfg.RedeemCustody = *update.RedeemCustody
		field = "redeemCustody"
	}
	if update.SupplyCap != nil {
		cfg.ReceiptSupplyCap = *update.SupplyCap
		field = "receiptSupplyCap"
	}
	if update.Paused != nil {
		cfg.Paused = *update.Paused
		field = "paused"
	}
	if update.AllowedMintProgramCaller != nil {
		cfg.AllowedMintProgramCaller = *update.AllowedMintProgramCaller
		field = "allowedMintProgramCaller"
	}
	previousVersion := cfg.Version
	cfg.Version++

	addr := ConfigAddress()
	if err := e.state.KVPut(addr[:], cfg); err != nil {
		return err
	}
	if err := e.appendConfigAudit(ConfigAudit{Mutator: signer, PreviousVersion: previousVersion, NewVersion: cfg.Version, Field: field, At: e.now().Unix()}); err != nil {
		return err
	}
	e.emit(events.ConfigUpdated{PreviousVersion: previousVersion, NewVersion: cfg.Version, Field: field})
	return nil
}

// UpdateFreezeAdministrators replaces the freeze administrator set atomically.
func (e *Engine) UpdateFreezeAdministrators(signer [32]byte, admins [][32]byte) error {
	start := e.now()
	err := e.updateAdminSet(signer, admins, "freezeAdmins", func(cfg *Config, admins [][32]byte) {
		cfg.FreezeAdmins = admins
	})
	e.observe("update_freeze_administrators", err, start)
	return err
}

// UpdateRewardsAdministrators replaces the rewards administrator set atomically.
func (e *Engine) UpdateRewardsAdministrators(signer [32]byte, admins [][32]byte) error {
	start := e.now()
	err := e.updateAdminSet(signer, admins, "rewardsAdmins", func(cfg *Config, admins [][32]byte) {
		cfg.RewardsAdmins = admins
	})
	e.observe("update_rewards_administrators", err, start)
	return err
}

func (e *Engine) updateAdminSet(signer [32]byte, admins [][32]byte, field string, apply func(cfg *Config, admins [][32]byte)) error {
	if err := e.requireUpgradeAuthority(signer); err != nil {
		return err
	}
	if err := validateAdminSet(admins); err != nil {
		return err
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	apply(cfg, append([][32]byte(nil), admins...))
	previousVersion := cfg.Version
	cfg.Version++

	addr := ConfigAddress()
	if err := e.state.KVPut(addr[:], cfg); err != nil {
		return err
	}
	if err := e.appendConfigAudit(ConfigAudit{Mutator: signer, PreviousVersion: previousVersion, NewVersion: cfg.Version, Field: field, At: e.now().Unix()}); err != nil {
		return err
	}
	e.emit(events.ConfigUpdated{PreviousVersion: previousVersion, NewVersion: cfg.Version, Field: field})
	return nil
}
