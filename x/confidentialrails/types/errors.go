package types

import "cosmossdk.io/errors"

// ModuleName is reused both as the store key and as the error codespace,
// the way the teacher's x/privacy/types/keys.go does.
const ModuleName = "confidentialrails"

// Error discriminants, one per spec.md §7 kind. Registered with
// cosmossdk.io/errors exactly as the teacher registers types.ErrXxx in its
// (not retrieved, reconstructed-from-usage) types/errors.go.
var (
	ErrRailInactive             = errors.Register(ModuleName, 2, "rail is not active")
	ErrRailSealed                = errors.Register(ModuleName, 3, "rail is sealed")
	ErrRailAlreadySealed         = errors.Register(ModuleName, 4, "rail is already sealed")
	ErrRailAlreadyDeactivated    = errors.Register(ModuleName, 5, "rail is already deactivated")
	ErrRailPaused                = errors.Register(ModuleName, 6, "rail is paused")
	ErrRailAlreadyPaused         = errors.Register(ModuleName, 7, "rail is already paused")
	ErrRailNotPaused             = errors.Register(ModuleName, 8, "rail is not paused")
	ErrUnauthorized              = errors.Register(ModuleName, 9, "caller is not the rail authority")
	ErrNullifierAlreadyUsed      = errors.Register(ModuleName, 10, "nullifier has already been used")
	ErrHandshakeAlreadyRevoked   = errors.Register(ModuleName, 11, "handshake has already been revoked")
	ErrInvalidRail               = errors.Register(ModuleName, 12, "rail does not exist or does not match")
	ErrOverflow                  = errors.Register(ModuleName, 13, "arithmetic overflow")
	ErrInsufficientNorthTokens   = errors.Register(ModuleName, 14, "authority does not hold the required NORTH governance token")
	ErrInvalidTokenAccount       = errors.Register(ModuleName, 15, "invalid token account")
	ErrInvalidMint               = errors.Register(ModuleName, 16, "invalid token mint")
	ErrInvalidAmount             = errors.Register(ModuleName, 17, "amount must be greater than zero")
	ErrInsufficientVaultBalance  = errors.Register(ModuleName, 18, "vault balance is insufficient")
	ErrAlreadyWithdrawn          = errors.Register(ModuleName, 19, "deposit has already been withdrawn")
	ErrInvalidZkProof            = errors.Register(ModuleName, 20, "proof is malformed")
	ErrInvalidProofInputs        = errors.Register(ModuleName, 21, "public input count does not match the verifying key")
	ErrProofVerificationFailed   = errors.Register(ModuleName, 22, "proof failed verification")
	ErrCommitmentMismatch        = errors.Register(ModuleName, 23, "supplied commitment does not match stored commitment")
	ErrInvalidVaultPoolOwner     = errors.Register(ModuleName, 24, "vault pool is not owned by the expected rail")
	ErrInvalidAssetState         = errors.Register(ModuleName, 25, "asset state does not match the expected rail/asset pair")
	ErrInvalidTransferNonce      = errors.Register(ModuleName, 26, "transfer nonce must be strictly positive")
	ErrNotFound                  = errors.Register(ModuleName, 27, "record not found")
	ErrAlreadyExists             = errors.Register(ModuleName, 28, "record already exists")
)
