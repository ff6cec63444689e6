package keeper

import (
	"context"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// DepositTokenInput carries the arguments to `deposit_token`
// (spec.md §4.G "Token variants").
type DepositTokenInput struct {
	Rail            types.AccountID
	Sender          types.AccountID
	TokenMint       types.AccountID
	Decimals        uint8
	Amount          uint64
	Proof           [crypto.ProofSize]byte
	Commitment      types.Hash32
	NullifierHash   types.Hash32
	EncryptedAmount [64]byte
}

// DepositToken implements spec.md §4.G `deposit_token`: the same flow as
// Deposit, but custody moves via the checked fungible-token transfer
// primitive and the asset key is the mint id rather than zero.
func (k Keeper) DepositToken(ctx context.Context, in DepositTokenInput) (types.AccountID, error) {
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

	vaultPool := types.DeriveVaultPoolID(in.Rail)
	mintKey := types.Hash32(in.TokenMint)
	if err := k.tokenRuntime.TransferChecked(ctx, in.Sender, vaultPool, in.TokenMint, in.Sender, in.Amount, in.Decimals); err != nil {
		return types.AccountID{}, err
	}
	newVaultBalance, err := addVaultBalance(k.getTokenVaultBalance(ctx, in.Rail, mintKey), in.Amount)
	if err != nil {
		return types.AccountID{}, err
	}
	k.setTokenVaultBalance(ctx, in.Rail, mintKey, newVaultBalance)

	if err := k.reconcileAssetState(ctx, in.Rail, mintKey, in.Commitment, in.EncryptedAmount); err != nil {
		return types.AccountID{}, err
	}

	vault, _ := k.GetZkVault(ctx, in.Rail)
	tokenDepositCount := vault.TokenDepositCount
	if tokenDepositCount == ^uint64(0) {
		return types.AccountID{}, types.ErrOverflow
	}
	depositID := types.DeriveTokenDepositID(in.Rail, in.Sender, in.TokenMint, tokenDepositCount)

	vault.TokenDepositCount = tokenDepositCount + 1
	k.setZkVault(ctx, in.Rail, vault)

	record := types.TokenDepositRecord{
		Rail:            in.Rail,
		Sender:          in.Sender,
		TokenMint:       in.TokenMint,
		Decimals:        in.Decimals,
		EncryptedAmount: in.EncryptedAmount,
		Commitment:      in.Commitment,
		CreatedAt:       k.hostLedger.CurrentTime(ctx),
	}
	k.store(ctx).Set(types.TokenDepositRecordKey(depositID), record.Marshal())

	return depositID, nil
}

// WithdrawTokenInput carries the arguments to `withdraw_token`.
type WithdrawTokenInput struct {
	Rail                    types.AccountID
	Receiver                types.AccountID
	TokenMint               types.AccountID
	Decimals                uint8
	DepositID               types.AccountID
	Amount                  uint64
	Proof                   [crypto.ProofSize]byte
	BalanceCommitmentBefore types.Hash32
	BalanceCommitmentAfter  types.Hash32
	NullifierHash           types.Hash32
	NewEncryptedBalance     [64]byte
}

// WithdrawToken implements spec.md §4.G `withdraw_token`. The program
// signs the outbound transfer as the vault authority, identified by the
// deterministic vault_pool derivation (spec.md §4.G, §6).
func (k Keeper) WithdrawToken(ctx context.Context, in WithdrawTokenInput) error {
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

	bz := k.store(ctx).Get(types.TokenDepositRecordKey(in.DepositID))
	if bz == nil {
		return types.ErrNotFound
	}
	record, err := types.UnmarshalTokenDepositRecord(bz)
	if err != nil {
		return types.ErrNotFound
	}
	if record.IsWithdrawn {
		return types.ErrAlreadyWithdrawn
	}

	mintKey := types.Hash32(in.TokenMint)
	asset, exists := k.GetAssetState(ctx, in.Rail, mintKey)
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

	newVaultBalance, err := subVaultBalance(k.getTokenVaultBalance(ctx, in.Rail, mintKey), in.Amount)
	if err != nil {
		return err
	}

	vaultPool := types.DeriveVaultPoolID(in.Rail)
	if err := k.tokenRuntime.TransferChecked(ctx, vaultPool, in.Receiver, in.TokenMint, vaultPool, in.Amount, in.Decimals); err != nil {
		return err
	}
	k.setTokenVaultBalance(ctx, in.Rail, mintKey, newVaultBalance)

	if err := k.reconcileAssetState(ctx, in.Rail, mintKey, in.BalanceCommitmentAfter, in.NewEncryptedBalance); err != nil {
		return err
	}

	record.IsWithdrawn = true
	k.store(ctx).Set(types.TokenDepositRecordKey(in.DepositID), record.Marshal())
	return nil
}

// TransferTokenInput carries the arguments to
// `confidential_transfer_token`.
type TransferTokenInput struct {
	SenderRail               types.AccountID
	ReceiverRail             types.AccountID
	TokenMint                types.AccountID
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

// ConfidentialTransferToken implements spec.md §4.G
// `confidential_transfer_token`.
func (k Keeper) ConfidentialTransferToken(ctx context.Context, in TransferTokenInput) (types.AccountID, error) {
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

	mintKey := types.Hash32(in.TokenMint)
	senderAsset, exists := k.GetAssetState(ctx, in.SenderRail, mintKey)
	if !exists {
		return types.AccountID{}, types.ErrInvalidAssetState
	}
	if err := requireBeforeCommitment(senderAsset, in.SenderCommitmentBefore); err != nil {
		return types.AccountID{}, err
	}
	receiverAsset, exists := k.GetAssetState(ctx, in.ReceiverRail, mintKey)
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

	if err := k.reconcileAssetState(ctx, in.SenderRail, mintKey, in.SenderCommitmentAfter, in.NewSenderEncrypted); err != nil {
		return types.AccountID{}, err
	}
	if err := k.reconcileAssetState(ctx, in.ReceiverRail, mintKey, in.ReceiverCommitmentAfter, in.NewReceiverEncrypted); err != nil {
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
		IsToken:            true,
		TokenMint:          in.TokenMint,
		CreatedAt:          k.hostLedger.CurrentTime(ctx),
	}
	k.store(ctx).Set(types.TransferRecordKey(transferID), record.Marshal())

	return transferID, nil
}
