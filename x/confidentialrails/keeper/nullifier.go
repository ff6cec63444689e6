package keeper

import (
	"context"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetNullifier loads the (rail, nullifierHash) nullifier registry record.
func (k Keeper) GetNullifier(ctx context.Context, railID types.AccountID, nullifierHash types.Hash32) (types.NullifierRegistry, bool) {
	id := types.DeriveNullifierID(railID, nullifierHash)
	bz := k.store(ctx).Get(types.NullifierKey(id))
	if bz == nil {
		return types.NullifierRegistry{}, false
	}
	n, err := types.UnmarshalNullifierRegistry(bz)
	if err != nil {
		return types.NullifierRegistry{}, false
	}
	return n, true
}

// markNullifierSpent implements spec.md §4.E: creation is the only state
// change. If a record for (rail, nullifierHash) already exists it returns
// ErrNullifierAlreadyUsed and writes nothing. It is called only from
// CreateHandshake; the transition executors do not mark nullifiers.
func (k Keeper) markNullifierSpent(ctx context.Context, railID types.AccountID, nullifierHash types.Hash32) error {
	if _, exists := k.GetNullifier(ctx, railID, nullifierHash); exists {
		return types.ErrNullifierAlreadyUsed
	}
	id := types.DeriveNullifierID(railID, nullifierHash)
	n := types.NullifierRegistry{
		Rail:          railID,
		NullifierHash: nullifierHash,
		Spent:         true,
		SpentAt:       k.hostLedger.CurrentTime(ctx),
	}
	k.store(ctx).Set(types.NullifierKey(id), n.Marshal())
	return nil
}
