package rewards

import (
	"time"

	"vaultmint/core/events"
	"vaultmint/merkle"
	"vaultmint/native/vault"
	"vaultmint/observability"
	"vaultmint/tokenprogram"
)

// kvStore is the slice of core/state.Manager's surface the engine depends
// on.
type kvStore interface {
	KVPut(key []byte, value interface{}) error
	KVGet(key []byte, out interface{}) (bool, error)
	CreateIfAbsent(key []byte, value interface{}) (bool, error)
}

// Engine wires epoch registration and reward claims to their dependencies.
type Engine struct {
	state   kvStore
	token   tokenprogram.Program
	emitter events.Emitter
	nowFn   func() time.Time
}

// NewEngine constructs a rewards engine.
func NewEngine(state kvStore, token tokenprogram.Program) *Engine {
	return &Engine{
		state:   state,
		token:   token,
		emitter: events.NoopEmitter{},
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

// SetEmitter configures the event emitter used by the engine. Passing nil
// resets the emitter to a no-op implementation.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// SetNowFunc overrides the time source used to stamp records. Nil restores
// the default UTC clock.
func (e *Engine) SetNowFunc(now func() time.Time) {
	if now == nil {
		e.nowFn = func() time.Time { return time.Now().UTC() }
		return
	}
	e.nowFn = now
}

func (e *Engine) now() time.Time {
	if e.nowFn == nil {
		return time.Now().UTC()
	}
	return e.nowFn()
}

func (e *Engine) emit(evt events.Event) {
	if e.emitter == nil || evt == nil {
		return
	}
	e.emitter.Emit(evt)
}

func (e *Engine) loadConfig() (*vault.Config, error) {
	var cfg vault.Config
	addr := vault.ConfigAddress()
	found, err := e.state.KVGet(addr[:], &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vault.ErrConfigNotFound
	}
	return &cfg, nil
}

func (e *Engine) observe(operation string, err error, start time.Time) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	observability.CoreMetrics().Observe(operation, outcome, time.Since(start).Seconds())
}

// CreateRewardsEpoch registers a new distribution window. Fails if index is
// already in use.
func (e *Engine) CreateRewardsEpoch(signer [32]byte, index uint64, merkleRoot [32]byte, total uint64) error {
	start := e.now()
	err := e.createRewardsEpoch(signer, index, merkleRoot, total)
	e.observe("create_rewards_epoch", err, start)
	return err
}

func (e *Engine) createRewardsEpoch(signer [32]byte, index uint64, merkleRoot [32]byte, total uint64) error {
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := vault.RequireRewardsAdmin(cfg, signer); err != nil {
		return err
	}

	epoch := &Epoch{Index: index, MerkleRoot: merkleRoot, Total: total, CreatedAt: e.now().Unix()}
	addr := vault.EpochAddress(index)
	created, err := e.state.CreateIfAbsent(addr[:], epoch)
	if err != nil {
		return err
	}
	if !created {
		return ErrEpochAlreadyExists
	}

	e.emit(events.EpochCreated{Index: index, MerkleRoot: merkleRoot, Total: total})
	return nil
}

// ClaimRewards verifies proof against the recorded epoch root and, on
// success, mints amount of receipt token to caller. Each (epoch, caller)
// pair may claim at most once.
func (e *Engine) ClaimRewards(caller [32]byte, epochIndex uint64, amount uint64, proof [][32]byte) error {
	start := e.now()
	err := e.claimRewards(caller, epochIndex, amount, proof)
	e.observe("claim_rewards", err, start)
	return err
}

func (e *Engine) claimRewards(caller [32]byte, epochIndex uint64, amount uint64, proof [][32]byte) error {
	if amount == 0 {
		return vault.ErrInvalidAmount
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	if err := vault.RequireNotPaused(cfg); err != nil {
		return err
	}

	epochAddr := vault.EpochAddress(epochIndex)
	var epoch Epoch
	found, err := e.state.KVGet(epochAddr[:], &epoch)
	if err != nil {
		return err
	}
	if !found {
		return ErrEpochNotFound
	}

	leaf := merkle.Leaf(caller, amount, epochIndex)
	if err := merkle.Verify(leaf, proof, epoch.MerkleRoot); err != nil {
		return err
	}

	if cfg.EnforceEpochTotals && epoch.Claimed+amount > epoch.Total {
		return ErrClaimExceedsEpochTotal
	}
	if cfg.ReceiptSupplyCap > 0 {
		current := e.token.Supply(cfg.ReceiptTokenID)
		if current+amount > cfg.ReceiptSupplyCap {
			return vault.ErrCapExceeded
		}
	}

	claimAddr := vault.ClaimAddress(epochAddr, caller)
	created, err := e.state.CreateIfAbsent(claimAddr[:], &ClaimRecord{Epoch: epochIndex, User: caller})
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadyClaimed
	}

	userReceiptAcct := vault.UserTokenAccount(cfg.ReceiptTokenID, caller)
	if err := e.token.MintTo(cfg.ReceiptTokenID, userReceiptAcct, amount, vault.MintAuthority()); err != nil {
		return err
	}

	if cfg.EnforceEpochTotals {
		epoch.Claimed += amount
		if err := e.state.KVPut(epochAddr[:], &epoch); err != nil {
			return err
		}
	}

	observability.CoreMetrics().SetReceiptSupply(e.token.Supply(cfg.ReceiptTokenID))
	e.emit(events.Claimed{User: caller, Epoch: epochIndex, Amount: amount})
	return nil
}
