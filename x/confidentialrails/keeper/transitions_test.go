package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/keeper"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/testutil"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

var (
	commitmentVKICScalars = []int64{11, 13, 17}
	commitmentVKDelta     = int64(7)
	withdrawVKICScalars   = []int64{53, 59, 61, 67, 71}
	withdrawVKDelta       = int64(47)
	transferVKICScalars   = []int64{23, 29, 31, 37, 41, 43}
	transferVKDelta       = int64(19)
)

func senderID(b byte) types.AccountID {
	var id types.AccountID
	id[30] = b
	return id
}

func TestDepositThenWithdrawRoundTrip(t *testing.T) {
	k, hostLedger, _, ctx, railID, _ := setupActiveRail(t)
	sender := senderID(1)
	receiver := senderID(2)

	commitment := testutil.SmallFieldElement(100)
	nullifier := testutil.SmallFieldElement(200)
	require.NoError(t, k.CreateHandshake(ctx, railID, types.Hash32(commitment), types.Hash32(nullifier)))

	depositProof := testutil.BuildValidProof(commitmentVKDelta, commitmentVKICScalars, [][crypto.FieldSize]byte{commitment, nullifier})

	hostLedger.NativeBalances[sender] = 1000
	depositID, err := k.Deposit(ctx, keeper.DepositInput{
		Rail:          railID,
		Sender:        sender,
		Amount:        1000,
		Proof:         depositProof,
		Commitment:    types.Hash32(commitment),
		NullifierHash: types.Hash32(nullifier),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), hostLedger.NativeBalances[sender])

	asset, found := k.GetAssetState(ctx, railID, types.Hash32{})
	require.True(t, found)
	require.Equal(t, types.Hash32(commitment), asset.BalanceCommitment)

	record, found := k.GetDepositRecord(ctx, depositID)
	require.True(t, found)
	require.False(t, record.IsWithdrawn)

	// withdraw
	before := commitment
	after := testutil.SmallFieldElement(300)
	withdrawNullifier := testutil.SmallFieldElement(400)
	amountField := crypto.AmountField(1000)

	withdrawProof := testutil.BuildValidProof(withdrawVKDelta, withdrawVKICScalars, [][crypto.FieldSize]byte{before, after, amountField, withdrawNullifier})

	err = k.Withdraw(ctx, keeper.WithdrawInput{
		Rail:                    railID,
		Receiver:                receiver,
		DepositID:               depositID,
		Amount:                  1000,
		Proof:                   withdrawProof,
		BalanceCommitmentBefore: types.Hash32(before),
		BalanceCommitmentAfter:  types.Hash32(after),
		NullifierHash:           types.Hash32(withdrawNullifier),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1000), hostLedger.NativeBalances[receiver])

	record, found = k.GetDepositRecord(ctx, depositID)
	require.True(t, found)
	require.True(t, record.IsWithdrawn)

	// replay fails with AlreadyWithdrawn
	err = k.Withdraw(ctx, keeper.WithdrawInput{
		Rail:                    railID,
		Receiver:                receiver,
		DepositID:               depositID,
		Amount:                  1000,
		Proof:                   withdrawProof,
		BalanceCommitmentBefore: types.Hash32(before),
		BalanceCommitmentAfter:  types.Hash32(after),
		NullifierHash:           types.Hash32(withdrawNullifier),
	})
	require.ErrorIs(t, err, types.ErrAlreadyWithdrawn)
}

func TestDepositWithoutHandshakeFails(t *testing.T) {
	k, hostLedger, _, ctx, railID, _ := setupActiveRail(t)
	sender := senderID(3)
	hostLedger.NativeBalances[sender] = 1000

	commitment := testutil.SmallFieldElement(1)
	nullifier := testutil.SmallFieldElement(2)
	proof := testutil.BuildValidProof(commitmentVKDelta, commitmentVKICScalars, [][crypto.FieldSize]byte{commitment, nullifier})

	_, err := k.Deposit(ctx, keeper.DepositInput{
		Rail:          railID,
		Sender:        sender,
		Amount:        1000,
		Proof:         proof,
		Commitment:    types.Hash32(commitment),
		NullifierHash: types.Hash32(nullifier),
	})
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestDepositRejectsZeroAmount(t *testing.T) {
	k, _, _, ctx, railID, _ := setupActiveRail(t)
	sender := senderID(4)

	_, err := k.Deposit(ctx, keeper.DepositInput{
		Rail:   railID,
		Sender: sender,
		Amount: 0,
	})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestConfidentialTransferRejectsBadNonce(t *testing.T) {
	k, _, _, ctx, railID, _ := setupActiveRail(t)

	_, err := k.ConfidentialTransfer(ctx, keeper.TransferInput{
		SenderRail:    railID,
		ReceiverRail:  railID,
		TransferNonce: 0,
	})
	require.ErrorIs(t, err, types.ErrInvalidTransferNonce)
}

func TestConfidentialTransferDetectsCommitmentMismatch(t *testing.T) {
	k, hostLedger, _, ctx, senderRail, _ := setupActiveRail(t)

	receiverAuthority := authorityID(10)
	hostLedger.NorthBalances[receiverAuthority] = 1
	receiverRail, err := k.InitializeRail(ctx, receiverAuthority, 1, 1)
	require.NoError(t, err)

	sender := senderID(5)
	hostLedger.NativeBalances[sender] = 500

	// seed both rails with asset state via a deposit each
	seedAssetState(t, k, ctx, senderRail, sender, 500)
	seedAssetState(t, k, ctx, receiverRail, sender, 500)

	wrongBefore := testutil.SmallFieldElement(999)
	_, err = k.ConfidentialTransfer(ctx, keeper.TransferInput{
		SenderRail:             senderRail,
		ReceiverRail:           receiverRail,
		TransferNonce:          7,
		SenderCommitmentBefore: types.Hash32(wrongBefore),
	})
	require.ErrorIs(t, err, types.ErrCommitmentMismatch)
}

// seedAssetState drives a minimal deposit to materialize a rail's native
// VaultAssetState so later transfer-path tests have a "before" commitment
// to compare against.
func seedAssetState(t *testing.T, k *keeper.Keeper, ctx sdk.Context, railID, sender types.AccountID, amount uint64) {
	t.Helper()
	commitment := testutil.SmallFieldElement(int64(amount))
	nullifier := testutil.SmallFieldElement(int64(amount) + 1)
	require.NoError(t, k.CreateHandshake(ctx, railID, types.Hash32(commitment), types.Hash32(nullifier)))
	proof := testutil.BuildValidProof(commitmentVKDelta, commitmentVKICScalars, [][crypto.FieldSize]byte{commitment, nullifier})
	_, err := k.Deposit(ctx, keeper.DepositInput{
		Rail:          railID,
		Sender:        sender,
		Amount:        amount,
		Proof:         proof,
		Commitment:    types.Hash32(commitment),
		NullifierHash: types.Hash32(nullifier),
	})
	require.NoError(t, err)
}
