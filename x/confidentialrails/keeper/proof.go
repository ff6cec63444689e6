package keeper

import (
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// verifyTransition parses the raw proof blob and checks it against the
// given VK and ordered public inputs, translating the crypto package's
// standalone sentinel errors onto this module's registered error
// discriminants (spec.md §7).
func verifyTransition(rawProof [crypto.ProofSize]byte, publicInputs []types.Hash32, vk crypto.VerifyingKey) error {
	proof, err := crypto.ParseProof(rawProof[:])
	if err != nil {
		return types.ErrInvalidZkProof
	}

	inputs := make([][crypto.FieldSize]byte, len(publicInputs))
	for i, in := range publicInputs {
		inputs[i] = in
	}

	ok, err := crypto.VerifyProof(proof, inputs, vk)
	if err != nil {
		switch err {
		case crypto.ErrInvalidProofInputs:
			return types.ErrInvalidProofInputs
		default:
			return types.ErrProofVerificationFailed
		}
	}
	if !ok {
		return types.ErrProofVerificationFailed
	}
	return nil
}
