package rewards

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vaultmint/merkle"
	"vaultmint/native/vault"
	"vaultmint/tokenprogram"
)

func newTestEngine(t *testing.T, enforceTotals bool) (*Engine, *mockStorage, *tokenprogram.Memory, [32]byte, [32]byte) {
	t.Helper()
	var rewardsAdmin, receiptToken [32]byte
	rewardsAdmin[0] = 0x01
	receiptToken[0] = 0x02

	store := newMockStorage()
	cfg := &vault.Config{
		ReceiptTokenID:     receiptToken,
		RewardsAdmins:      [][32]byte{rewardsAdmin},
		EnforceEpochTotals: enforceTotals,
	}
	addr := vault.ConfigAddress()
	require.NoError(t, store.KVPut(addr[:], cfg))

	token := tokenprogram.NewMemory()
	engine := NewEngine(store, token)
	return engine, store, token, rewardsAdmin, receiptToken
}

func TestClaimRewardsSingleUse(t *testing.T) {
	engine, _, token, rewardsAdmin, receiptToken := newTestEngine(t, false)

	var userA [32]byte
	userA[0] = 0xAA
	leafA := merkle.Leaf(userA, 500, 7)
	root := leafA // single-leaf tree: root equals the sole leaf

	require.NoError(t, engine.CreateRewardsEpoch(rewardsAdmin, 7, root, 500))
	require.NoError(t, engine.ClaimRewards(userA, 7, 500, nil))

	acct := vault.UserTokenAccount(receiptToken, userA)
	require.EqualValues(t, 500, token.BalanceOf(acct))

	require.ErrorIs(t, engine.ClaimRewards(userA, 7, 500, nil), ErrAlreadyClaimed)
}

func TestClaimRewardsTwoLeafTree(t *testing.T) {
	engine, _, _, rewardsAdmin, _ := newTestEngine(t, false)

	var user1, user2 [32]byte
	user1[0] = 0x01
	user2[0] = 0x02
	l1 := merkle.Leaf(user1, 100, 3)
	l2 := merkle.Leaf(user2, 200, 3)
	root := merkle.HashPair(l1, l2)

	require.NoError(t, engine.CreateRewardsEpoch(rewardsAdmin, 3, root, 300))
	require.NoError(t, engine.ClaimRewards(user1, 3, 100, [][32]byte{l2}))
	require.ErrorIs(t, engine.ClaimRewards(user1, 3, 100, [][32]byte{l2}), ErrAlreadyClaimed)
	require.ErrorIs(t, engine.ClaimRewards(user2, 3, 200, [][32]byte{l2}), merkle.ErrInvalidProof)
}

func TestCreateRewardsEpochRejectsDuplicateIndex(t *testing.T) {
	engine, _, _, rewardsAdmin, _ := newTestEngine(t, false)
	var root [32]byte
	require.NoError(t, engine.CreateRewardsEpoch(rewardsAdmin, 1, root, 0))
	require.ErrorIs(t, engine.CreateRewardsEpoch(rewardsAdmin, 1, root, 0), ErrEpochAlreadyExists)
}

func TestClaimRewardsRespectsSupplyCap(t *testing.T) {
	var rewardsAdmin, receiptToken [32]byte
	rewardsAdmin[0] = 0x01
	receiptToken[0] = 0x02

	store := newMockStorage()
	cfg := &vault.Config{
		ReceiptTokenID:   receiptToken,
		RewardsAdmins:    [][32]byte{rewardsAdmin},
		ReceiptSupplyCap: 100,
	}
	addr := vault.ConfigAddress()
	require.NoError(t, store.KVPut(addr[:], cfg))

	token := tokenprogram.NewMemory()
	engine := NewEngine(store, token)

	var user [32]byte
	user[0] = 0x0B
	leaf := merkle.Leaf(user, 150, 9)
	require.NoError(t, engine.CreateRewardsEpoch(rewardsAdmin, 9, leaf, 150))

	require.ErrorIs(t, engine.ClaimRewards(user, 9, 150, nil), vault.ErrCapExceeded)

	acct := vault.UserTokenAccount(receiptToken, user)
	require.EqualValues(t, 0, token.BalanceOf(acct))
}

func TestEnforceEpochTotalsRejectsOveredeem(t *testing.T) {
	engine, _, _, rewardsAdmin, _ := newTestEngine(t, true)

	var user [32]byte
	user[0] = 0x09
	leaf := merkle.Leaf(user, 100, 5)
	require.NoError(t, engine.CreateRewardsEpoch(rewardsAdmin, 5, leaf, 50))
	require.ErrorIs(t, engine.ClaimRewards(user, 5, 100, nil), ErrClaimExceedsEpochTotal)
}
