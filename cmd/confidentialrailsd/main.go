// Command confidentialrailsd is a standalone harness around the
// confidentialrails module's Keeper. It does not implement a full
// Cosmos SDK chain binary: host-ledger account models, instruction
// dispatch, signer verification and rent are explicitly out of scope
// for this module, so there is no baseapp/ABCI wiring here, only a
// committed KVStore and a cobra CLI driving the Keeper directly —
// useful for local experimentation and for the integration tests a
// real host runtime would run against this module.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"

	"cosmossdk.io/log"
	storemetrics "cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/client/cli"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/keeper"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// memoryHostLedger is a minimal, in-process stand-in for the host
// runtime's native-currency ledger and governance-token balances; a
// real deployment plugs in its own implementation of types.HostLedger.
type memoryHostLedger struct {
	northBalances  map[types.AccountID]uint64
	nativeBalances map[types.AccountID]uint64
}

func newMemoryHostLedger() *memoryHostLedger {
	return &memoryHostLedger{
		northBalances:  make(map[types.AccountID]uint64),
		nativeBalances: make(map[types.AccountID]uint64),
	}
}

func (l *memoryHostLedger) CurrentTime(_ context.Context) int64 {
	return time.Now().Unix()
}

func (l *memoryHostLedger) NorthTokenBalance(_ context.Context, authority types.AccountID) (uint64, error) {
	return l.northBalances[authority], nil
}

func (l *memoryHostLedger) DebitNative(_ context.Context, from types.AccountID, amount uint64) error {
	if l.nativeBalances[from] < amount {
		return types.ErrInsufficientVaultBalance
	}
	l.nativeBalances[from] -= amount
	return nil
}

func (l *memoryHostLedger) CreditNative(_ context.Context, to types.AccountID, amount uint64) error {
	l.nativeBalances[to] += amount
	return nil
}

// memoryTokenRuntime is a minimal stand-in for types.TokenRuntime.
type memoryTokenRuntime struct {
	balances map[types.AccountID]map[types.AccountID]uint64
}

func newMemoryTokenRuntime() *memoryTokenRuntime {
	return &memoryTokenRuntime{balances: make(map[types.AccountID]map[types.AccountID]uint64)}
}

func (r *memoryTokenRuntime) TransferChecked(_ context.Context, from, to, mint, _ types.AccountID, amount uint64, _ uint8) error {
	acct, ok := r.balances[mint]
	if !ok {
		acct = make(map[types.AccountID]uint64)
		r.balances[mint] = acct
	}
	if acct[from] < amount {
		return types.ErrInsufficientVaultBalance
	}
	acct[from] -= amount
	acct[to] += amount
	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confidentialrailsd",
		Short: "Standalone confidentialrails module harness",
	}

	rootCmd.AddCommand(cli.GetTxCmd(), cli.GetQueryCmd())
	return rootCmd
}

func buildKeeper() (*keeper.Keeper, sdk.Context, error) {
	storeKey := storetypes.NewKVStoreKey(types.ModuleName)

	cms := rootmulti.NewStore(dbm.NewMemDB(), log.NewNopLogger(), storemetrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, sdk.Context{}, err
	}

	hostLedger := newMemoryHostLedger()
	tokenRuntime := newMemoryTokenRuntime()
	k := keeper.NewKeeper(storeKey, hostLedger, tokenRuntime)

	header := tmproto.Header{Time: time.Now()}
	ctx := sdk.NewContext(cms, header, false, log.NewNopLogger())
	return k, ctx, nil
}

func main() {
	k, ctx, err := buildKeeper()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := newRootCmd()
	cli.WithKeeper(rootCmd, k, ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
