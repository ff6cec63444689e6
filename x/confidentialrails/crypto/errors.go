package crypto

import "errors"

// Sentinel errors returned by the verifier. Keeper-layer callers map these
// onto the cosmossdk.io/errors discriminants registered in
// x/confidentialrails/types/errors.go (InvalidProofInputs,
// ProofVerificationFailed) per spec.md §7 — the crypto package stays free
// of any dependency on the keeper/types packages so it can be reused as a
// standalone verifier library.
var (
	ErrInvalidProofInputs      = errors.New("crypto: public input count does not match verifying key")
	ErrProofVerificationFailed = errors.New("crypto: proof failed pairing check")
)
