package testutil

import (
	"context"
	"testing"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	tmtime "github.com/cometbft/cometbft/types/time"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/keeper"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// FakeHostLedger is an in-memory stand-in for the host ledger runtime
// collaborator (spec.md §1 "OUT OF SCOPE"). It keeps a deterministic
// clock and plain uint64 balances so keeper tests can drive it without a
// real chain.
type FakeHostLedger struct {
	Now            int64
	NorthBalances  map[types.AccountID]uint64
	NativeBalances map[types.AccountID]uint64
}

// NewFakeHostLedger constructs an empty FakeHostLedger.
func NewFakeHostLedger() *FakeHostLedger {
	return &FakeHostLedger{
		Now:            1,
		NorthBalances:  map[types.AccountID]uint64{},
		NativeBalances: map[types.AccountID]uint64{},
	}
}

func (f *FakeHostLedger) CurrentTime(ctx context.Context) int64 {
	return f.Now
}

func (f *FakeHostLedger) NorthTokenBalance(ctx context.Context, authority types.AccountID) (uint64, error) {
	return f.NorthBalances[authority], nil
}

func (f *FakeHostLedger) DebitNative(ctx context.Context, from types.AccountID, amount uint64) error {
	f.NativeBalances[from] -= amount
	return nil
}

func (f *FakeHostLedger) CreditNative(ctx context.Context, to types.AccountID, amount uint64) error {
	f.NativeBalances[to] += amount
	return nil
}

// FakeTokenRuntime is an in-memory stand-in for the fungible-token
// runtime's transfer_checked primitive (spec.md §6).
type FakeTokenRuntime struct {
	Balances map[types.AccountID]uint64
}

// NewFakeTokenRuntime constructs an empty FakeTokenRuntime.
func NewFakeTokenRuntime() *FakeTokenRuntime {
	return &FakeTokenRuntime{Balances: map[types.AccountID]uint64{}}
}

func (f *FakeTokenRuntime) TransferChecked(ctx context.Context, from, to, mint, authority types.AccountID, amount uint64, decimals uint8) error {
	f.Balances[from] -= amount
	f.Balances[to] += amount
	return nil
}

// SetupKeeper wires a Keeper against an in-memory KVStore, following the
// teacher's testutil.DefaultContextWithDB convention.
func SetupKeeper(t *testing.T) (*keeper.Keeper, *FakeHostLedger, *FakeTokenRuntime, sdk.Context) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test"))
	ctx := testCtx.Ctx.WithBlockHeader(tmproto.Header{Time: tmtime.Now()})

	hostLedger := NewFakeHostLedger()
	tokenRuntime := NewFakeTokenRuntime()
	k := keeper.NewKeeper(storeKey, hostLedger, tokenRuntime)

	return k, hostLedger, tokenRuntime, ctx
}
