package vault

import (
	"time"

	"vaultmint/core/events"
	"vaultmint/observability"
	"vaultmint/tokenprogram"
)

// kvStore is the slice of core/state.Manager's surface the engine depends
// on. Declaring it as an interface keeps the engine testable against a
// hand-rolled fake without pulling in the real storage backend.
type kvStore interface {
	KVPut(key []byte, value interface{}) error
	KVGet(key []byte, out interface{}) (bool, error)
	KVDelete(key []byte) error
	Has(key []byte) (bool, error)
	CreateIfAbsent(key []byte, value interface{}) (bool, error)
	KVAppend(key []byte, value []byte) error
	KVGetList(key []byte, out interface{}) error
}

// Engine wires the vault operations to their dependencies: persistent
// key/value state, the token program capability, an event emitter, and an
// injectable clock.
type Engine struct {
	state            kvStore
	token            tokenprogram.Program
	emitter          events.Emitter
	nowFn            func() time.Time
	upgradeAuthority [32]byte
}

// NewEngine constructs a vault engine. upgradeAuthority is the signer
// recognized by the host loader metadata as authorized to initialize and
// mutate the configuration singleton.
func NewEngine(state kvStore, token tokenprogram.Program, upgradeAuthority [32]byte) *Engine {
	return &Engine{
		state:            state,
		token:            token,
		emitter:          events.NoopEmitter{},
		nowFn:            func() time.Time { return time.Now().UTC() },
		upgradeAuthority: upgradeAuthority,
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

func (e *Engine) requireUpgradeAuthority(signer [32]byte) error {
	if signer != e.upgradeAuthority {
		return ErrUnauthorizedUpgrade
	}
	return nil
}

func (e *Engine) loadConfig() (*Config, error) {
	var cfg Config
	addr := ConfigAddress()
	found, err := e.state.KVGet(addr[:], &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrConfigNotFound
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
