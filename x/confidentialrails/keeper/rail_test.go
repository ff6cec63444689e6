package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/testutil"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

func authorityID(b byte) types.AccountID {
	var id types.AccountID
	id[31] = b
	return id
}

func TestInitializeRailRequiresNorthToken(t *testing.T) {
	k, hostLedger, _, ctx := testutil.SetupKeeper(t)
	authority := authorityID(1)

	_, err := k.InitializeRail(ctx, authority, 1, 2)
	require.ErrorIs(t, err, types.ErrInsufficientNorthTokens)

	hostLedger.NorthBalances[authority] = 1
	railID, err := k.InitializeRail(ctx, authority, 1, 2)
	require.NoError(t, err)

	rail, found := k.GetRail(ctx, railID)
	require.True(t, found)
	require.True(t, rail.Active)
	require.False(t, rail.Paused)
	require.False(t, rail.Sealed)
	require.Equal(t, types.ProtocolVersion, rail.Version)
}

func TestInitializeRailRejectsDuplicate(t *testing.T) {
	k, hostLedger, _, ctx := testutil.SetupKeeper(t)
	authority := authorityID(2)
	hostLedger.NorthBalances[authority] = 1

	_, err := k.InitializeRail(ctx, authority, 1, 1)
	require.NoError(t, err)

	_, err = k.InitializeRail(ctx, authority, 1, 1)
	require.ErrorIs(t, err, types.ErrAlreadyExists)
}

func TestRailLifecycle(t *testing.T) {
	k, hostLedger, _, ctx := testutil.SetupKeeper(t)
	authority := authorityID(3)
	other := authorityID(4)
	hostLedger.NorthBalances[authority] = 1

	railID, err := k.InitializeRail(ctx, authority, 1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, k.PauseRail(ctx, railID, other), types.ErrUnauthorized)

	require.NoError(t, k.PauseRail(ctx, railID, authority))
	require.ErrorIs(t, k.PauseRail(ctx, railID, authority), types.ErrRailAlreadyPaused)

	require.NoError(t, k.UnpauseRail(ctx, railID, authority))
	require.ErrorIs(t, k.UnpauseRail(ctx, railID, authority), types.ErrRailNotPaused)

	seal := types.Hash32{1}
	require.NoError(t, k.SealRail(ctx, railID, authority, seal))
	require.ErrorIs(t, k.SealRail(ctx, railID, authority, seal), types.ErrRailAlreadySealed)

	rail, _ := k.GetRail(ctx, railID)
	require.Equal(t, seal, rail.AuditSeal)

	require.NoError(t, k.DeactivateRail(ctx, railID, authority, 7))
	require.ErrorIs(t, k.DeactivateRail(ctx, railID, authority, 7), types.ErrRailAlreadyDeactivated)

	rail, _ = k.GetRail(ctx, railID)
	require.False(t, rail.Active)
	require.Equal(t, uint8(7), rail.DeactivationReason)
}

func TestPauseRequiresActiveRail(t *testing.T) {
	k, hostLedger, _, ctx := testutil.SetupKeeper(t)
	authority := authorityID(5)
	hostLedger.NorthBalances[authority] = 1

	railID, err := k.InitializeRail(ctx, authority, 1, 1)
	require.NoError(t, err)
	require.NoError(t, k.DeactivateRail(ctx, railID, authority, 0))

	require.ErrorIs(t, k.PauseRail(ctx, railID, authority), types.ErrRailInactive)
}

func TestSealRequiresActiveRail(t *testing.T) {
	k, hostLedger, _, ctx := testutil.SetupKeeper(t)
	authority := authorityID(6)
	hostLedger.NorthBalances[authority] = 1

	railID, err := k.InitializeRail(ctx, authority, 1, 1)
	require.NoError(t, err)
	require.NoError(t, k.DeactivateRail(ctx, railID, authority, 0))

	require.ErrorIs(t, k.SealRail(ctx, railID, authority, types.Hash32{1}), types.ErrRailInactive)
}
