package vault

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vaultmint/tokenprogram"
)

func testKeys() (upgrade, freezeAdmin, rewardsAdmin, user, reserveToken, receiptToken [32]byte) {
	upgrade[0] = 0x01
	freezeAdmin[0] = 0x02
	rewardsAdmin[0] = 0x03
	user[0] = 0x04
	reserveToken[0] = 0x05
	receiptToken[0] = 0x06
	return
}

func newTestEngine(t *testing.T) (*Engine, *tokenprogram.Memory, [32]byte, [32]byte, [32]byte, [32]byte) {
	t.Helper()
	upgrade, freezeAdmin, rewardsAdmin, user, reserveToken, receiptToken := testKeys()
	store := newMockStorage()
	token := tokenprogram.NewMemory()
	engine := NewEngine(store, token, upgrade)
	engine.SetNowFunc(func() time.Time { return time.Unix(1_700_000_000, 0) })

	reserveCustody := VaultAuthorityAddress()
	redeemCustody := RedeemVaultAuthorityAddress()
	require.NoError(t, engine.Initialize(upgrade, reserveToken, receiptToken, reserveCustody, redeemCustody,
		[][32]byte{freezeAdmin}, [][32]byte{rewardsAdmin}))

	userReserveAcct := UserTokenAccount(reserveToken, user)
	token.Seed(userReserveAcct, reserveToken, 1_000_000)

	return engine, token, upgrade, rewardsAdmin, user, receiptToken
}

func TestDepositAndRedeemRoundTrip(t *testing.T) {
	engine, token, _, rewardsAdmin, user, receiptToken := newTestEngine(t)

	require.NoError(t, engine.Deposit(user, 1_000_000))
	userReceiptAcct := UserTokenAccount(receiptToken, user)
	require.EqualValues(t, 1_000_000, token.BalanceOf(userReceiptAcct))
	require.EqualValues(t, 1_000_000, token.Supply(receiptToken))

	require.NoError(t, engine.RequestRedeem(user, 400_000))
	require.EqualValues(t, 600_000, token.Supply(receiptToken))
	require.EqualValues(t, 600_000, token.BalanceOf(userReceiptAcct))

	cfg, err := engine.loadConfig()
	require.NoError(t, err)
	token.Seed(cfg.RedeemCustody, cfg.ReserveTokenID, 400_000)

	require.NoError(t, engine.CompleteRedeem(rewardsAdmin, user))
	userReserveAcct := UserTokenAccount(cfg.ReserveTokenID, user)
	require.EqualValues(t, 400_000, token.BalanceOf(userReserveAcct))
	require.EqualValues(t, 0, token.BalanceOf(cfg.RedeemCustody))

	addr := RedemptionRequestAddress(user)
	exists, err := engine.state.Has(addr[:])
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDepositRespectsSupplyCap(t *testing.T) {
	engine, _, upgrade, _, user, _ := newTestEngine(t)
	supplyCap := uint64(1_000)
	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{SupplyCap: &supplyCap}))

	require.NoError(t, engine.Deposit(user, 900))
	require.ErrorIs(t, engine.Deposit(user, 101), ErrCapExceeded)
	require.NoError(t, engine.Deposit(user, 100))
}

func TestDoubleRedeemRequestFails(t *testing.T) {
	engine, _, _, _, user, _ := newTestEngine(t)
	require.NoError(t, engine.Deposit(user, 1_000))
	require.NoError(t, engine.RequestRedeem(user, 100))
	require.ErrorIs(t, engine.RequestRedeem(user, 100), ErrPendingRedeemExists)
}

func TestPauseBlocksMutatingOperationsOnly(t *testing.T) {
	engine, token, upgrade, _, user, receiptToken := newTestEngine(t)
	_, freezeAdmin, _, _, _, _ := testKeys()
	require.NoError(t, engine.Deposit(user, 1_000))

	paused := true
	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{Paused: &paused}))

	require.ErrorIs(t, engine.Deposit(user, 100), ErrPaused)
	require.ErrorIs(t, engine.RequestRedeem(user, 100), ErrPaused)

	var holder [32]byte
	holder[0] = 0x0c
	target := UserTokenAccount(receiptToken, holder)
	token.Seed(target, receiptToken, 0)
	require.NoError(t, engine.FreezeTokenAccount(freezeAdmin, target))

	unpaused := false
	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{Paused: &unpaused}))
	require.NoError(t, engine.Deposit(user, 100))
}

func TestFreezeRejectsWrongMint(t *testing.T) {
	engine, _, _, _, user, _ := newTestEngine(t)
	_, freezeAdmin, _, _, reserveToken, _ := testKeys()
	wrongMintAccount := UserTokenAccount(reserveToken, user)
	require.ErrorIs(t, engine.FreezeTokenAccount(freezeAdmin, wrongMintAccount), ErrWrongMint)
}

func TestAdminSetBoundIsEnforced(t *testing.T) {
	engine, _, upgrade, _, _, _ := newTestEngine(t)
	var admins [][32]byte
	for i := 0; i < MaxAdmins+1; i++ {
		var k [32]byte
		k[0] = byte(i + 1)
		admins = append(admins, k)
	}
	require.ErrorIs(t, engine.UpdateFreezeAdministrators(upgrade, admins), ErrTooManyAdministrators)
}

func TestConfigMutationsAreAudited(t *testing.T) {
	engine, _, upgrade, _, _, _ := newTestEngine(t)
	paused := true
	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{Paused: &paused}))

	log, err := engine.ConfigAuditLog()
	require.NoError(t, err)
	require.Len(t, log, 1)
	require.Equal(t, upgrade, log[0].Mutator)
	require.Equal(t, "paused", log[0].Field)
	require.EqualValues(t, 1, log[0].NewVersion)
}

func TestExternalProgramMintRequiresConfiguredCaller(t *testing.T) {
	engine, token, upgrade, _, user, receiptToken := newTestEngine(t)
	destination := UserTokenAccount(receiptToken, user)
	token.Seed(destination, receiptToken, 0)

	var callerProgram [32]byte
	callerProgram[0] = 0x09

	require.ErrorIs(t, engine.ExternalProgramMint(callerProgram, destination, 500), ErrUnauthorizedMintProgramCaller)

	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{AllowedMintProgramCaller: &callerProgram}))

	require.NoError(t, engine.ExternalProgramMint(callerProgram, destination, 500))
	require.EqualValues(t, 500, token.BalanceOf(destination))
	require.EqualValues(t, 500, token.Supply(receiptToken))

	var otherCaller [32]byte
	otherCaller[0] = 0x0a
	require.ErrorIs(t, engine.ExternalProgramMint(otherCaller, destination, 100), ErrUnauthorizedMintProgramCaller)
}

func TestExternalProgramMintRejectsWrongMintDestination(t *testing.T) {
	engine, token, upgrade, _, user, _ := newTestEngine(t)
	_, _, _, _, reserveToken, _ := testKeys()
	wrongMintAccount := UserTokenAccount(reserveToken, user)
	token.Seed(wrongMintAccount, reserveToken, 0)

	var callerProgram [32]byte
	callerProgram[0] = 0x09
	require.NoError(t, engine.UpdateConfig(upgrade, ConfigUpdate{AllowedMintProgramCaller: &callerProgram}))

	require.ErrorIs(t, engine.ExternalProgramMint(callerProgram, wrongMintAccount, 500), ErrWrongMint)
}

func TestInitializeIsSingleShot(t *testing.T) {
	engine, _, upgrade, _, _, _ := newTestEngine(t)
	_, _, _, _, reserveToken, receiptToken := testKeys()
	err := engine.Initialize(upgrade, reserveToken, receiptToken, VaultAuthorityAddress(), RedeemVaultAuthorityAddress(), nil, nil)
	require.True(t, errors.Is(err, ErrConfigAlreadyExists))
}
