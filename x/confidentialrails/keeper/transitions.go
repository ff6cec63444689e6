package keeper

import (
	"context"

	"github.com/google/uuid"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// requireHandshake implements "Deposit executors require an active
// handshake bound to the same rail" (spec.md §4.G).
func (k Keeper) requireHandshake(ctx context.Context, railID types.AccountID, nullifierHash types.Hash32) error {
	h, exists := k.GetHandshake(ctx, railID, nullifierHash)
	if !exists || !h.Active {
		return types.ErrNotFound
	}
	return nil
}

// DepositInput carries the arguments to the native deposit transition
// (spec.md §4.G `deposit`).
type DepositInput struct {
	Rail            types.AccountID
	Sender          types.AccountID
	Amount          uint64
	Proof           [crypto.ProofSize]byte
	Commitment      types.Hash32
	NullifierHash   types.Hash32
	EncryptedAmount [64]byte
}

// Deposit implements spec.md §4.G `deposit`.
func (k Keeper) Deposit(ctx context.Context, in DepositInput) (types.AccountID, error) {
	r, exists := k.GetRail(ctx, in.Rail)
	if !exists {
		return types.AccountID{}, types.ErrInvalidRail
	}
	if err := requireActiveUnpaused(r); err != nil {
		return types.AccountID{}, err
	}
	if in.Amount == 0 {
		return types.AccountID{}, types.ErrInvalidAmount
	}
	if err := k.requireHandshake(ctx, in.Rail, in.NullifierHash); err != nil {
		return types.AccountID{}, err
	}

	publicInputs := []types.Hash32{in.Commitment, in.NullifierHash}
	if err := verifyTransition(in.Proof, publicInputs, crypto.COMMITMENT_VK); err != nil {
		return types.AccountID{}, err
	}

	if err := k.hostLedger.DebitNative(ctx, in.Sender, in.Amount); err != nil {
		return types.AccountID{}, err
	}
	newVaultBalance, err := addVaultBalance(k.getNativeVaultBalance(ctx, in.Rail), in.Amount)
	if err != nil {
		return types.AccountID{}, err
	}
	k.setNativeVaultBalance(ctx, in.Rail, newVaultBalance)

	if err := k.reconcileAssetState(ctx, in.Rail, types.Hash32{}, in.Commitment, in.EncryptedAmount); err != nil {
		return types.AccountID{}, err
	}

	vault, _ := k.GetZkVault(ctx, in.Rail)
	depositCount := vault.DepositCount
	depositID := types.DeriveDepositID(in.Rail, in.Sender, depositCount)

	if depositCount == ^uint64(0) {
		return types.AccountID{}, types.ErrOverflow
	}
	vault.DepositCount = depositCount + 1
	k.setZkVault(ctx, in.Rail, vault)

	record := types.DepositRecord{
		Rail:            in.Rail,
		Sender:          in.Sender,
		EncryptedAmount: in.EncryptedAmount,
		Commitment:      in.Commitment,
		CreatedAt:       k.hostLedger.CurrentTime(ctx),
	}
	k.store(ctx).Set(types.DepositRecordKey(depositID), record.Marshal())

	k.Logger(sdk.UnwrapSDKContext(ctx)).Info("deposit executed",
		"correlation_id", uuid.New().String(), "deposit_id", depositID)
	return depositID, nil
}

// WithdrawInput carries the arguments to the native withdraw transition
// (spec.md §4.G `withdraw`).
type WithdrawInput struct {
	Rail                    types.AccountID
	Receiver                types.AccountID
	DepositID               types.AccountID
	Amount                  uint64
	Proof                   [crypto.ProofSize]byte
	BalanceCommitmentBefore types.Hash32
	BalanceCommitmentAfter  types.Hash32
	NullifierHash           types.Hash32
	NewEncryptedBalance     [64]byte
}

// Withdraw implements spec.md §4.G `withdraw`.
func (k Keeper) Withdraw(ctx context.Context, in WithdrawInput) error {
	r, exists := k.GetRail(ctx, in.Rail)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := requireActiveUnpaused(r); err != nil {
		return err
	}
	if in.Amount == 0 {
		return types.ErrInvalidAmount
	}

	bz := k.store(ctx).Get(types.DepositRecordKey(in.DepositID))
	if bz == nil {
		return types.ErrNotFound
	}
	record, err := types.UnmarshalDepositRecord(bz)
	if err != nil {
		return types.ErrNotFound
	}
	if record.IsWithdrawn {
		return types.ErrAlreadyWithdrawn
	}

	asset, exists := k.GetAssetState(ctx, in.Rail, types.Hash32{})
	if !exists {
		return types.ErrInvalidAssetState
	}
	if err := requireBeforeCommitment(asset, in.BalanceCommitmentBefore); err != nil {
		return err
	}

	amountField := crypto.AmountField(in.Amount)
	publicInputs := []types.Hash32{
		in.BalanceCommitmentBefore,
		in.BalanceCommitmentAfter,
		types.Hash32(amountField),
		in.NullifierHash,
	}
	if err := verifyTransition(in.Proof, publicInputs, crypto.WITHDRAW_VK); err != nil {
		return err
	}

	newVaultBalance, err := subVaultBalance(k.getNativeVaultBalance(ctx, in.Rail), in.Amount)
	if err != nil {
		return err
	}

	if err := k.hostLedger.CreditNative(ctx, in.Receiver, in.Amount); err != nil {
		return err
	}
	k.setNativeVaultBalance(ctx, in.Rail, newVaultBalance)

	if err := k.reconcileAssetState(ctx, in.Rail, types.Hash32{}, in.BalanceCommitmentAfter, in.NewEncryptedBalance); err != nil {
		return err
	}

	record.IsWithdrawn = true
	k.store(ctx).Set(types.DepositRecordKey(in.DepositID), record.Marshal())

	k.Logger(sdk.UnwrapSDKContext(ctx)).Info("withdraw executed",
		"correlation_id", uuid.New().String(), "deposit_id", in.DepositID)
	return nil
}

// TransferInput carries the arguments to `confidential_transfer`
// (spec.md §4.G).
type TransferInput struct {
	SenderRail               types.AccountID
	ReceiverRail             types.AccountID
	TransferNonce            int64
	Proof                    [crypto.ProofSize]byte
	SenderCommitmentBefore   types.Hash32
	SenderCommitmentAfter    types.Hash32
	ReceiverCommitmentBefore types.Hash32
	ReceiverCommitmentAfter  types.Hash32
	NullifierHash            types.Hash32
	NewSenderEncrypted       [64]byte
	NewReceiverEncrypted     [64]byte
}

// ConfidentialTransfer implements spec.md §4.G `confidential_transfer`.
func (k Keeper) ConfidentialTransfer(ctx context.Context, in TransferInput) (types.AccountID, error) {
	if in.TransferNonce <= 0 {
		return types.AccountID{}, types.ErrInvalidTransferNonce
	}

	senderRail, exists := k.GetRail(ctx, in.SenderRail)
	if !exists {
		return types.AccountID{}, types.ErrInvalidRail
	}
	if err := requireActiveUnpaused(senderRail); err != nil {
		return types.AccountID{}, err
	}
	receiverRail, exists := k.GetRail(ctx, in.ReceiverRail)
	if !exists {
		return types.AccountID{}, types.ErrInvalidRail
	}
	if err := requireActiveUnpaused(receiverRail); err != nil {
		return types.AccountID{}, err
	}

	senderAsset, exists := k.GetAssetState(ctx, in.SenderRail, types.Hash32{})
	if !exists {
		return types.AccountID{}, types.ErrInvalidAssetState
	}
	if err := requireBeforeCommitment(senderAsset, in.SenderCommitmentBefore); err != nil {
		return types.AccountID{}, err
	}
	receiverAsset, exists := k.GetAssetState(ctx, in.ReceiverRail, types.Hash32{})
	if !exists {
		return types.AccountID{}, types.ErrInvalidAssetState
	}
	if err := requireBeforeCommitment(receiverAsset, in.ReceiverCommitmentBefore); err != nil {
		return types.AccountID{}, err
	}

	publicInputs := []types.Hash32{
		in.SenderCommitmentBefore,
		in.SenderCommitmentAfter,
		in.ReceiverCommitmentBefore,
		in.ReceiverCommitmentAfter,
		in.NullifierHash,
	}
	if err := verifyTransition(in.Proof, publicInputs, crypto.TRANSFER_VK); err != nil {
		return types.AccountID{}, err
	}

	if err := k.reconcileAssetState(ctx, in.SenderRail, types.Hash32{}, in.SenderCommitmentAfter, in.NewSenderEncrypted); err != nil {
		return types.AccountID{}, err
	}
	if err := k.reconcileAssetState(ctx, in.ReceiverRail, types.Hash32{}, in.ReceiverCommitmentAfter, in.NewReceiverEncrypted); err != nil {
		return types.AccountID{}, err
	}

	transferID := types.DeriveTransferID(in.SenderRail, in.ReceiverRail, in.TransferNonce)
	if k.store(ctx).Get(types.TransferRecordKey(transferID)) != nil {
		return types.AccountID{}, types.ErrAlreadyExists
	}

	record := types.TransferRecord{
		SenderRail:         in.SenderRail,
		ReceiverRail:       in.ReceiverRail,
		SenderCommitment:   in.SenderCommitmentAfter,
		ReceiverCommitment: in.ReceiverCommitmentAfter,
		NullifierHash:      in.NullifierHash,
		ProofHash:          types.ProofHashFromProof(in.Proof),
		IsToken:            false,
		CreatedAt:          k.hostLedger.CurrentTime(ctx),
	}
	k.store(ctx).Set(types.TransferRecordKey(transferID), record.Marshal())

	k.Logger(sdk.UnwrapSDKContext(ctx)).Info("confidential transfer executed",
		"correlation_id", uuid.New().String(), "transfer_id", transferID)
	return transferID, nil
}
