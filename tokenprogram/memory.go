package tokenprogram

import "sync"

type account struct {
	mint    [32]byte
	balance uint64
	frozen  bool
}

// Memory is an in-memory reference implementation of Program, sufficient for
// exercising native/vault and native/rewards in tests without a real host
// token program.
type Memory struct {
	mu       sync.Mutex
	accounts map[[32]byte]*account
	supply   map[[32]byte]uint64
}

// NewMemory constructs an empty in-memory token program.
func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[[32]byte]*account),
		supply:   make(map[[32]byte]uint64),
	}
}

// Seed registers account as holding balance units of mint, for test setup.
func (m *Memory) Seed(acct, mint [32]byte, balance uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[acct] = &account{mint: mint, balance: balance}
}

func (m *Memory) get(acct [32]byte) *account {
	a, ok := m.accounts[acct]
	if !ok {
		a = &account{}
		m.accounts[acct] = a
	}
	return a
}

// Transfer implements Program.
func (m *Memory) Transfer(from, to [32]byte, tokenID [32]byte, amount uint64, signer [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.get(from)
	if src.frozen {
		return ErrFrozen
	}
	if src.balance < amount {
		return ErrInsufficientBalance
	}
	src.balance -= amount
	dst := m.get(to)
	dst.mint = tokenID
	dst.balance += amount
	return nil
}

// MintTo implements Program.
func (m *Memory) MintTo(mint [32]byte, to [32]byte, amount uint64, mintAuthority [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dst := m.get(to)
	if dst.frozen {
		return ErrFrozen
	}
	dst.mint = mint
	dst.balance += amount
	m.supply[mint] += amount
	return nil
}

// Burn implements Program.
func (m *Memory) Burn(from [32]byte, mint [32]byte, amount uint64, owner [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.get(from)
	if src.frozen {
		return ErrFrozen
	}
	if src.balance < amount {
		return ErrInsufficientBalance
	}
	if m.supply[mint] < amount {
		return ErrInsufficientBalance
	}
	src.balance -= amount
	m.supply[mint] -= amount
	return nil
}

// FreezeAccount implements Program.
func (m *Memory) FreezeAccount(acct [32]byte, mint [32]byte, freezeAuthority [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.get(acct)
	if a.mint != mint {
		return ErrWrongMint
	}
	a.frozen = true
	return nil
}

// ThawAccount implements Program.
func (m *Memory) ThawAccount(acct [32]byte, mint [32]byte, freezeAuthority [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.get(acct)
	if a.mint != mint {
		return ErrWrongMint
	}
	a.frozen = false
	return nil
}

// AccountMint implements Program.
func (m *Memory) AccountMint(acct [32]byte) ([32]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[acct]
	if !ok {
		return [32]byte{}, false
	}
	return a.mint, true
}

// Supply implements Program.
func (m *Memory) Supply(mint [32]byte) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.supply[mint]
}

// BalanceOf implements Program.
func (m *Memory) BalanceOf(acct [32]byte) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[acct]
	if !ok {
		return 0
	}
	return a.balance
}
