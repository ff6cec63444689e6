package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetZkVault loads the per-rail ZkVault record.
func (k Keeper) GetZkVault(ctx context.Context, railID types.AccountID) (types.ZkVault, bool) {
	vaultID := types.DeriveZkVaultID(railID)
	bz := k.store(ctx).Get(types.ZkVaultKey(vaultID))
	if bz == nil {
		return types.ZkVault{}, false
	}
	v, err := types.UnmarshalZkVault(bz)
	if err != nil {
		return types.ZkVault{}, false
	}
	return v, true
}

func (k Keeper) setZkVault(ctx context.Context, railID types.AccountID, v types.ZkVault) {
	vaultID := types.DeriveZkVaultID(railID)
	k.store(ctx).Set(types.ZkVaultKey(vaultID), v.Marshal())
}

// GetAssetState loads the VaultAssetState for (rail, assetKey), if present.
func (k Keeper) GetAssetState(ctx context.Context, railID types.AccountID, assetKey types.Hash32) (types.VaultAssetState, bool) {
	assetVault := types.DeriveAssetVaultID(railID, assetKey)
	bz := k.store(ctx).Get(types.VaultAssetStateKey(assetVault))
	if bz == nil {
		return types.VaultAssetState{}, false
	}
	a, err := types.UnmarshalVaultAssetState(bz)
	if err != nil {
		return types.VaultAssetState{}, false
	}
	return a, true
}

func (k Keeper) setAssetState(ctx context.Context, railID types.AccountID, a types.VaultAssetState) {
	assetVault := types.DeriveAssetVaultID(railID, a.AssetKey)
	k.store(ctx).Set(types.VaultAssetStateKey(assetVault), a.Marshal())
}

// reconcileAssetState implements the lazy-init contract of spec.md §4.F:
// if absent, it is created with the given rail/assetKey and commitment;
// if present, the stored (rail, assetKey) must match, else
// InvalidAssetState. It does not itself check "before" commitments —
// callers that bind a before/after pair do that explicitly.
func (k Keeper) reconcileAssetState(ctx context.Context, railID types.AccountID, assetKey types.Hash32, commitment types.Hash32, encryptedBalance [64]byte) error {
	existing, found := k.GetAssetState(ctx, railID, assetKey)
	if found {
		if existing.Rail != railID || existing.AssetKey != assetKey {
			return types.ErrInvalidAssetState
		}
	}
	a := types.VaultAssetState{
		Rail:              railID,
		AssetKey:          assetKey,
		BalanceCommitment: commitment,
		EncryptedBalance:  encryptedBalance,
		UpdatedAt:         k.hostLedger.CurrentTime(ctx),
	}
	k.setAssetState(ctx, railID, a)
	return nil
}

// requireBeforeCommitment implements the "before" commitment check
// common to withdraw/transfer (spec.md §4.F, §4.G).
func requireBeforeCommitment(a types.VaultAssetState, before types.Hash32) error {
	if a.BalanceCommitment != before {
		return types.ErrCommitmentMismatch
	}
	return nil
}

// GetBalance is a read-only probe over a rail's asset state. spec.md §9
// Open Question 2 treats this as a no-op entry that exists only to
// establish account loading for off-chain readers; it has no side
// effect and simply surfaces whatever is currently stored.
func (k Keeper) GetBalance(ctx context.Context, railID types.AccountID, assetKey types.Hash32) (types.VaultAssetState, bool) {
	return k.GetAssetState(ctx, railID, assetKey)
}

// nativeVaultBalance / token vault balance bookkeeping. The program-owned
// vault_pool / asset_vault accounts hold raw uint64 balances mutated only
// by deposit*/withdraw* (spec.md §5 "Shared resource policy").

func (k Keeper) getNativeVaultBalance(ctx context.Context, railID types.AccountID) uint64 {
	vaultPool := types.DeriveVaultPoolID(railID)
	bz := k.store(ctx).Get(types.NativeVaultKey(vaultPool))
	if bz == nil {
		return 0
	}
	return getUint64LE(bz)
}

func (k Keeper) setNativeVaultBalance(ctx context.Context, railID types.AccountID, balance uint64) {
	vaultPool := types.DeriveVaultPoolID(railID)
	k.store(ctx).Set(types.NativeVaultKey(vaultPool), putUint64LE(balance))
}

func (k Keeper) getTokenVaultBalance(ctx context.Context, railID types.AccountID, mint types.Hash32) uint64 {
	assetVault := types.DeriveAssetVaultID(railID, mint)
	bz := k.store(ctx).Get(types.TokenVaultKey(assetVault))
	if bz == nil {
		return 0
	}
	return getUint64LE(bz)
}

func (k Keeper) setTokenVaultBalance(ctx context.Context, railID types.AccountID, mint types.Hash32, balance uint64) {
	assetVault := types.DeriveAssetVaultID(railID, mint)
	k.store(ctx).Set(types.TokenVaultKey(assetVault), putUint64LE(balance))
}

// addVaultBalance and subVaultBalance route vault balance bookkeeping
// through math.Int rather than raw uint64 arithmetic, so a deposit/withdraw
// that would overflow or underflow a vault is rejected instead of silently
// wrapping.
func addVaultBalance(balance, amount uint64) (uint64, error) {
	sum := math.NewIntFromUint64(balance).Add(math.NewIntFromUint64(amount))
	if !sum.IsUint64() {
		return 0, types.ErrOverflow
	}
	return sum.Uint64(), nil
}

func subVaultBalance(balance, amount uint64) (uint64, error) {
	diff := math.NewIntFromUint64(balance).Sub(math.NewIntFromUint64(amount))
	if diff.IsNegative() {
		return 0, types.ErrInsufficientVaultBalance
	}
	return diff.Uint64(), nil
}
