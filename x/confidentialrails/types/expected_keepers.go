package types

import "context"

// HostLedger models the host ledger runtime's collaborator surface
// (spec.md §1 "OUT OF SCOPE", §6 "Interfaces consumed"): account
// addressing, per-transaction locking, native-currency balance mutation
// and the clock. This module never implements these directly; it only
// calls them, so a production binding would supply a real adapter over
// the chain's actual account/bank layer.
type HostLedger interface {
	// CurrentTime returns the host runtime's transaction clock, used to
	// stamp CreatedAt/UpdatedAt/SpentAt/RevokedAt fields.
	CurrentTime(ctx context.Context) int64

	// NorthTokenBalance returns how many units of the designated NORTH
	// governance token the given authority holds, consulted by
	// initialize_rail (spec.md §4.D).
	NorthTokenBalance(ctx context.Context, authority AccountID) (uint64, error)

	// DebitNative moves amount units of native currency from the given
	// account to the program's custody, used by deposit (spec.md §4.G
	// "move amount units from sender to that vault via the runtime's
	// native transfer").
	DebitNative(ctx context.Context, from AccountID, amount uint64) error

	// CreditNative moves amount units of native currency out of the
	// program's custody to the given account, used by withdraw (spec.md
	// §4.G "a direct balance-field mutation", since the vault is
	// program-owned).
	CreditNative(ctx context.Context, to AccountID, amount uint64) error
}

// TokenRuntime models the fungible-token runtime's `transfer_checked`
// primitive (spec.md §6), used by the token variants of deposit/withdraw/
// transfer to move custody while validating the mint's decimals.
type TokenRuntime interface {
	TransferChecked(ctx context.Context, from, to, mint, authority AccountID, amount uint64, decimals uint8) error
}
