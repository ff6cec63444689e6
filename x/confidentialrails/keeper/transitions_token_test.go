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

func mintID(b byte) types.AccountID {
	var id types.AccountID
	id[29] = b
	return id
}

func TestDepositThenWithdrawTokenRoundTrip(t *testing.T) {
	k, _, tokenRuntime, ctx, railID, _ := setupActiveRail(t)
	sender := senderID(11)
	receiver := senderID(12)
	mint := mintID(1)

	commitment := testutil.SmallFieldElement(500)
	nullifier := testutil.SmallFieldElement(600)
	require.NoError(t, k.CreateHandshake(ctx, railID, types.Hash32(commitment), types.Hash32(nullifier)))

	depositProof := testutil.BuildValidProof(commitmentVKDelta, commitmentVKICScalars, [][crypto.FieldSize]byte{commitment, nullifier})

	tokenRuntime.Balances[sender] = 2000
	depositID, err := k.DepositToken(ctx, keeper.DepositTokenInput{
		Rail:          railID,
		Sender:        sender,
		TokenMint:     mint,
		Decimals:      6,
		Amount:        2000,
		Proof:         depositProof,
		Commitment:    types.Hash32(commitment),
		NullifierHash: types.Hash32(nullifier),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), tokenRuntime.Balances[sender])

	asset, found := k.GetAssetState(ctx, railID, types.Hash32(mint))
	require.True(t, found)
	require.Equal(t, types.Hash32(commitment), asset.BalanceCommitment)

	record, found := k.GetTokenDepositRecord(ctx, depositID)
	require.True(t, found)
	require.False(t, record.IsWithdrawn)
	require.Equal(t, mint, record.TokenMint)

	before := commitment
	after := testutil.SmallFieldElement(700)
	withdrawNullifier := testutil.SmallFieldElement(800)
	amountField := crypto.AmountField(2000)

	withdrawProof := testutil.BuildValidProof(withdrawVKDelta, withdrawVKICScalars, [][crypto.FieldSize]byte{before, after, amountField, withdrawNullifier})

	err = k.WithdrawToken(ctx, keeper.WithdrawTokenInput{
		Rail:                    railID,
		Receiver:                receiver,
		TokenMint:               mint,
		Decimals:                6,
		DepositID:               depositID,
		Amount:                  2000,
		Proof:                   withdrawProof,
		BalanceCommitmentBefore: types.Hash32(before),
		BalanceCommitmentAfter:  types.Hash32(after),
		NullifierHash:           types.Hash32(withdrawNullifier),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2000), tokenRuntime.Balances[receiver])

	record, found = k.GetTokenDepositRecord(ctx, depositID)
	require.True(t, found)
	require.True(t, record.IsWithdrawn)

	err = k.WithdrawToken(ctx, keeper.WithdrawTokenInput{
		Rail:                    railID,
		Receiver:                receiver,
		TokenMint:               mint,
		Decimals:                6,
		DepositID:               depositID,
		Amount:                  2000,
		Proof:                   withdrawProof,
		BalanceCommitmentBefore: types.Hash32(before),
		BalanceCommitmentAfter:  types.Hash32(after),
		NullifierHash:           types.Hash32(withdrawNullifier),
	})
	require.ErrorIs(t, err, types.ErrAlreadyWithdrawn)
}

func TestConfidentialTransferTokenRoundTrip(t *testing.T) {
	k, hostLedger, tokenRuntime, ctx, senderRail, _ := setupActiveRail(t)

	receiverAuthority := authorityID(20)
	hostLedger.NorthBalances[receiverAuthority] = 1
	receiverRail, err := k.InitializeRail(ctx, receiverAuthority, 1, 1)
	require.NoError(t, err)

	sender := senderID(13)
	mint := mintID(2)
	tokenRuntime.Balances[sender] = 2000

	seedTokenAssetState(t, k, ctx, senderRail, sender, mint, 1000)
	seedTokenAssetState(t, k, ctx, receiverRail, sender, mint, 1000)

	senderBefore := testutil.SmallFieldElement(1000)
	senderAfter := testutil.SmallFieldElement(400)
	receiverBefore := testutil.SmallFieldElement(1000)
	receiverAfter := testutil.SmallFieldElement(1600)
	nullifier := testutil.SmallFieldElement(1700)

	proof := testutil.BuildValidProof(transferVKDelta, transferVKICScalars, [][crypto.FieldSize]byte{
		senderBefore, senderAfter, receiverBefore, receiverAfter, nullifier,
	})

	transferID, err := k.ConfidentialTransferToken(ctx, keeper.TransferTokenInput{
		SenderRail:               senderRail,
		ReceiverRail:             receiverRail,
		TokenMint:                mint,
		TransferNonce:            1,
		Proof:                    proof,
		SenderCommitmentBefore:   types.Hash32(senderBefore),
		SenderCommitmentAfter:    types.Hash32(senderAfter),
		ReceiverCommitmentBefore: types.Hash32(receiverBefore),
		ReceiverCommitmentAfter:  types.Hash32(receiverAfter),
		NullifierHash:            types.Hash32(nullifier),
	})
	require.NoError(t, err)

	record, found := k.GetTransferRecord(ctx, transferID)
	require.True(t, found)
	require.True(t, record.IsToken)
	require.Equal(t, mint, record.TokenMint)

	senderAsset, _ := k.GetAssetState(ctx, senderRail, types.Hash32(mint))
	require.Equal(t, types.Hash32(senderAfter), senderAsset.BalanceCommitment)
	receiverAsset, _ := k.GetAssetState(ctx, receiverRail, types.Hash32(mint))
	require.Equal(t, types.Hash32(receiverAfter), receiverAsset.BalanceCommitment)
}

// seedTokenAssetState drives a minimal token deposit to materialize a
// rail's token VaultAssetState for a given mint, so later transfer-path
// tests have a "before" commitment to compare against.
func seedTokenAssetState(t *testing.T, k *keeper.Keeper, ctx sdk.Context, railID, sender, mint types.AccountID, amount uint64) {
	t.Helper()
	commitment := testutil.SmallFieldElement(int64(amount))
	nullifier := testutil.SmallFieldElement(int64(amount) + 1)
	require.NoError(t, k.CreateHandshake(ctx, railID, types.Hash32(commitment), types.Hash32(nullifier)))
	proof := testutil.BuildValidProof(commitmentVKDelta, commitmentVKICScalars, [][crypto.FieldSize]byte{commitment, nullifier})
	_, err := k.DepositToken(ctx, keeper.DepositTokenInput{
		Rail:          railID,
		Sender:        sender,
		TokenMint:     mint,
		Decimals:      6,
		Amount:        amount,
		Proof:         proof,
		Commitment:    types.Hash32(commitment),
		NullifierHash: types.Hash32(nullifier),
	})
	require.NoError(t, err)
}
