package keeper

import (
	"context"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetHandshake loads the (rail, nullifierHash) handshake record.
func (k Keeper) GetHandshake(ctx context.Context, railID types.AccountID, nullifierHash types.Hash32) (types.Handshake, bool) {
	id := types.DeriveHandshakeID(railID, nullifierHash)
	bz := k.store(ctx).Get(types.HandshakeKey(id))
	if bz == nil {
		return types.Handshake{}, false
	}
	h, err := types.UnmarshalHandshake(bz)
	if err != nil {
		return types.Handshake{}, false
	}
	return h, true
}

func (k Keeper) setHandshake(ctx context.Context, railID types.AccountID, h types.Handshake) {
	id := types.DeriveHandshakeID(railID, h.NullifierHash)
	k.store(ctx).Set(types.HandshakeKey(id), h.Marshal())
}

// CreateHandshake implements spec.md §4.H: the only gated entry to a
// rail. It is also the sole place a nullifier is ever marked spent
// (spec.md §8 round-trip property: deposit/withdraw/transfer replay do
// not fail with NullifierAlreadyUsed, only handshake replay does).
func (k Keeper) CreateHandshake(ctx context.Context, railID types.AccountID, commitment, nullifierHash types.Hash32) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if r.Sealed {
		return types.ErrRailSealed
	}
	if err := requireActiveUnpaused(r); err != nil {
		return err
	}

	if err := k.markNullifierSpent(ctx, railID, nullifierHash); err != nil {
		return err
	}

	now := k.hostLedger.CurrentTime(ctx)
	h := types.Handshake{
		Rail:          railID,
		Commitment:    commitment,
		NullifierHash: nullifierHash,
		Active:        true,
		CreatedAt:     now,
	}
	k.setHandshake(ctx, railID, h)

	r.TotalHandshakes++
	r.UpdatedAt = now
	k.setRail(ctx, railID, r)
	return nil
}

// RevokeHandshake implements spec.md §4.H `revoke_handshake`.
func (k Keeper) RevokeHandshake(ctx context.Context, railID, caller types.AccountID, nullifierHash types.Hash32) error {
	r, exists := k.GetRail(ctx, railID)
	if !exists {
		return types.ErrInvalidRail
	}
	if err := k.requireAuthority(r, caller); err != nil {
		return err
	}

	h, exists := k.GetHandshake(ctx, railID, nullifierHash)
	if !exists {
		return types.ErrNotFound
	}
	if !h.Active {
		return types.ErrHandshakeAlreadyRevoked
	}
	h.Active = false
	h.RevokedAt = k.hostLedger.CurrentTime(ctx)
	k.setHandshake(ctx, railID, h)
	return nil
}
