package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/keeper"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/testutil"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

func setupActiveRail(t *testing.T) (*keeper.Keeper, *testutil.FakeHostLedger, *testutil.FakeTokenRuntime, sdk.Context, types.AccountID, types.AccountID) {
	t.Helper()
	k, hostLedger, tokenRuntime, ctx := testutil.SetupKeeper(t)
	authority := authorityID(9)
	hostLedger.NorthBalances[authority] = 1
	railID, err := k.InitializeRail(ctx, authority, 1, 1)
	require.NoError(t, err)
	return k, hostLedger, tokenRuntime, ctx, railID, authority
}

func TestCreateHandshakeThenDuplicateNullifierFails(t *testing.T) {
	k, _, _, ctx, railID, _ := setupActiveRail(t)

	commitment := types.Hash32{1}
	nullifier := types.Hash32{2}

	require.NoError(t, k.CreateHandshake(ctx, railID, commitment, nullifier))

	other := types.Hash32{3}
	err := k.CreateHandshake(ctx, railID, other, nullifier)
	require.ErrorIs(t, err, types.ErrNullifierAlreadyUsed)

	rail, _ := k.GetRail(ctx, railID)
	require.Equal(t, uint64(1), rail.TotalHandshakes)
}

func TestRevokeHandshake(t *testing.T) {
	k, _, _, ctx, railID, authority := setupActiveRail(t)

	commitment := types.Hash32{4}
	nullifier := types.Hash32{5}
	require.NoError(t, k.CreateHandshake(ctx, railID, commitment, nullifier))

	require.NoError(t, k.RevokeHandshake(ctx, railID, authority, nullifier))
	require.ErrorIs(t, k.RevokeHandshake(ctx, railID, authority, nullifier), types.ErrHandshakeAlreadyRevoked)
}

func TestCreateHandshakeRejectsSealedRail(t *testing.T) {
	k, _, _, ctx, railID, authority := setupActiveRail(t)

	require.NoError(t, k.SealRail(ctx, railID, authority, types.Hash32{9}))

	err := k.CreateHandshake(ctx, railID, types.Hash32{1}, types.Hash32{2})
	require.ErrorIs(t, err, types.ErrRailSealed)
}
