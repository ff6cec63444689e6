package keeper

import (
	"context"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetRail loads a rail by its derived id. The bool return reports
// existence, following the teacher's get-or-zero-value convention.
func (k Keeper) GetRail(ctx context.Context, rail types.AccountID) (types.Rail, bool) {
	bz := k.store(ctx).Get(types.RailKey(rail))
	if bz == nil {
		return types.Rail{}, false
	}
	r, err := types.UnmarshalRail(bz)
	if err != nil {
		return types.Rail{}, false
	}
	return r, true
}

func (k Keeper) setRail(ctx context.Context, rail types.AccountID, r types.Rail) {
	k.store(ctx).Set(types.RailKey(rail), r.Marshal())
}

// InitializeRail implements spec.md §4.D `initialize_rail`: Init → Active,
// gated on the caller holding at least one unit of the NORTH governance
// token.
func (k Keeper) InitializeRail(ctx context.Context, authority types.AccountID, institutionType, complianceLevel uint8) (types.AccountID, error) {
	railID := types.DeriveRailID(authority)
	if _, exists := k.GetRail(ctx, railID); exists {
		return types.AccountID{}, types.ErrAlreadyExists
	}

	balance, err := k.hostLedger.NorthTokenBalance(ctx, authority)
	if err != nil {
		return types.AccountID{}, err
	}
	if balance < 1 {
		return types.AccountID{}, types.ErrInsufficientNorthTokens
	}

	now := k.hostLedger.CurrentTime(ctx)
	r := types.Rail{
		Authority:       authority,
		InstitutionType: institutionType,
		ComplianceLevel: complianceLevel,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         types.ProtocolVersion,
	}
	k.setRail(ctx, railID, r)

	vaultID := types.DeriveZkVaultID(railID)
	k.store(ctx).Set(types.ZkVaultKey(vaultID), types.ZkVault{Rail: railID}.Marshal())

	return railID, nil
}

func (k Keeper) requireAuthority(r types.Rail, caller types.AccountID) error {
	if r.Authority != caller {
		return types.ErrUnauthorized
	}
	return nil
}

// SealRail implements spec.md §4.D `seal_rail`.
func (k Keeper) SealRail(ctx context.Context, railID, caller types.AccountID, auditSeal types.Hash32) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := k.requireAuthority(r, caller); err != nil {
		return err
	}
	if !r.Active {
		return types.ErrRailInactive
	}
	if r.Sealed {
		return types.ErrRailAlreadySealed
	}
	r.Sealed = true
	r.AuditSeal = auditSeal
	r.UpdatedAt = k.hostLedger.CurrentTime(ctx)
	k.setRail(ctx, railID, r)
	return nil
}

// PauseRail implements spec.md §4.D `pause_rail`.
func (k Keeper) PauseRail(ctx context.Context, railID, caller types.AccountID) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := k.requireAuthority(r, caller); err != nil {
		return err
	}
	if !r.Active {
		return types.ErrRailInactive
	}
	if r.Paused {
		return types.ErrRailAlreadyPaused
	}
	r.Paused = true
	r.UpdatedAt = k.hostLedger.CurrentTime(ctx)
	k.setRail(ctx, railID, r)
	return nil
}

// UnpauseRail implements spec.md §4.D `unpause_rail`.
func (k Keeper) UnpauseRail(ctx context.Context, railID, caller types.AccountID) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := k.requireAuthority(r, caller); err != nil {
		return err
	}
	if !r.Active {
		return types.ErrRailInactive
	}
	if !r.Paused {
		return types.ErrRailNotPaused
	}
	r.Paused = false
	r.UpdatedAt = k.hostLedger.CurrentTime(ctx)
	k.setRail(ctx, railID, r)
	return nil
}

// DeactivateRail implements spec.md §4.D `deactivate_rail`. Irreversible.
func (k Keeper) DeactivateRail(ctx context.Context, railID, caller types.AccountID, reason uint8) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := k.requireAuthority(r, caller); err != nil {
		return err
	}
	if !r.Active {
		return types.ErrRailAlreadyDeactivated
	}
	r.Active = false
	r.DeactivationReason = reason
	r.UpdatedAt = k.hostLedger.CurrentTime(ctx)
	k.setRail(ctx, railID, r)
	return nil
}

// requireActiveUnpaused implements the common "rail active and not
// paused" precondition every confidential transition requires
// (spec.md §4.D, §4.G "Common preconditions").
func requireActiveUnpaused(r types.Rail) error {
	if !r.Active {
		return types.ErrRailInactive
	}
	if r.Paused {
		return types.ErrRailPaused
	}
	return nil
}
