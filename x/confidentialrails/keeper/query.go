package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetDepositRecord loads a DepositRecord by its derived id.
func (k Keeper) GetDepositRecord(ctx context.Context, depositID types.AccountID) (types.DepositRecord, bool) {
	bz := k.store(ctx).Get(types.DepositRecordKey(depositID))
	if bz == nil {
		return types.DepositRecord{}, false
	}
	d, err := types.UnmarshalDepositRecord(bz)
	if err != nil {
		return types.DepositRecord{}, false
	}
	return d, true
}

// GetTokenDepositRecord loads a TokenDepositRecord by its derived id.
func (k Keeper) GetTokenDepositRecord(ctx context.Context, depositID types.AccountID) (types.TokenDepositRecord, bool) {
	bz := k.store(ctx).Get(types.TokenDepositRecordKey(depositID))
	if bz == nil {
		return types.TokenDepositRecord{}, false
	}
	d, err := types.UnmarshalTokenDepositRecord(bz)
	if err != nil {
		return types.TokenDepositRecord{}, false
	}
	return d, true
}

// GetTransferRecord loads a TransferRecord by its derived id.
func (k Keeper) GetTransferRecord(ctx context.Context, transferID types.AccountID) (types.TransferRecord, bool) {
	bz := k.store(ctx).Get(types.TransferRecordKey(transferID))
	if bz == nil {
		return types.TransferRecord{}, false
	}
	tr, err := types.UnmarshalTransferRecord(bz)
	if err != nil {
		return types.TransferRecord{}, false
	}
	return tr, true
}

// NativeVaultBalance returns a rail's program-owned native vault balance.
func (k Keeper) NativeVaultBalance(ctx context.Context, railID types.AccountID) uint64 {
	return k.getNativeVaultBalance(ctx, railID)
}

// TokenVaultBalance returns a rail's program-owned token vault balance
// for the given mint.
func (k Keeper) TokenVaultBalance(ctx context.Context, railID types.AccountID, mint types.Hash32) uint64 {
	return k.getTokenVaultBalance(ctx, railID, mint)
}

// QueryDepositRecord is the gRPC-facing counterpart to GetDepositRecord,
// translating "not found" into a status.Error the way a cosmos gRPC
// query service reports it to remote callers.
func (k Keeper) QueryDepositRecord(ctx context.Context, depositID types.AccountID) (types.DepositRecord, error) {
	record, found := k.GetDepositRecord(ctx, depositID)
	if !found {
		return types.DepositRecord{}, status.Error(codes.NotFound, "deposit record not found")
	}
	return record, nil
}

// QueryTransferRecord is the gRPC-facing counterpart to GetTransferRecord.
func (k Keeper) QueryTransferRecord(ctx context.Context, transferID types.AccountID) (types.TransferRecord, error) {
	record, found := k.GetTransferRecord(ctx, transferID)
	if !found {
		return types.TransferRecord{}, status.Error(codes.NotFound, "transfer record not found")
	}
	return record, nil
}

// QueryRail is the gRPC-facing counterpart to GetRail.
func (k Keeper) QueryRail(ctx context.Context, railID types.AccountID) (types.Rail, error) {
	rail, found := k.GetRail(ctx, railID)
	if !found {
		return types.Rail{}, status.Error(codes.NotFound, "rail not found")
	}
	return rail, nil
}
