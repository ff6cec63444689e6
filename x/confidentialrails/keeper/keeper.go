package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// Keeper owns the confidentialrails module's persisted state: rails,
// vaults, asset states, handshakes, nullifiers and the audit records in
// §3/§4 of the ledger this module implements. It is deliberately free of
// any dependency on account-model/signer-verification concerns (spec.md
// §1 "OUT OF SCOPE"); HostLedger and TokenRuntime stand in for those
// external collaborators.
type Keeper struct {
	storeKey storetypes.StoreKey

	hostLedger   types.HostLedger
	tokenRuntime types.TokenRuntime
}

// NewKeeper constructs a Keeper, mirroring the teacher's
// x/privacy/keeper.NewKeeper constructor shape.
func NewKeeper(
	storeKey storetypes.StoreKey,
	hostLedger types.HostLedger,
	tokenRuntime types.TokenRuntime,
) *Keeper {
	return &Keeper{
		storeKey:     storeKey,
		hostLedger:   hostLedger,
		tokenRuntime: tokenRuntime,
	}
}

// Logger returns a module-scoped logger, following the teacher's
// ctx.Logger().With("module", ...) convention.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// store returns the module's raw KVStore.
func (k Keeper) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// verifyingKeyFor maps a transition kind to its program-embedded VK, per
// spec.md §4.C.
func verifyingKeyFor(kind transitionKind) crypto.VerifyingKey {
	switch kind {
	case transitionDeposit, transitionDepositToken:
		return crypto.COMMITMENT_VK
	case transitionWithdraw, transitionWithdrawToken:
		return crypto.WITHDRAW_VK
	case transitionTransfer, transitionTransferToken:
		return crypto.TRANSFER_VK
	default:
		panic("confidentialrails: unknown transition kind")
	}
}

type transitionKind int

const (
	transitionDeposit transitionKind = iota
	transitionWithdraw
	transitionTransfer
	transitionDepositToken
	transitionWithdrawToken
	transitionTransferToken
)
