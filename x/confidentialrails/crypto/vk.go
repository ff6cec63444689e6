package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// The three program-embedded verifying keys, per spec.md §4.C. All three
// share one (alpha, beta, gamma) from the trusted setup; only delta and the
// IC basis differ per circuit.
//
// No trusted-setup ceremony can run in this environment (the prover and
// the circuit constraints are external collaborators per spec.md §1), so
// these are deterministic placeholder points: small fixed scalar multiples
// of the BN254 generators, computed once at process load. spec.md §9
// "Global state" already requires the VKs to be "initialized at load time
// and never mutated" — an init()-populated package var satisfies that
// literally. See DESIGN.md for the full rationale.
var (
	COMMITMENT_VK VerifyingKey
	TRANSFER_VK   VerifyingKey
	WITHDRAW_VK   VerifyingKey
)

func scalarMulG1Gen(k int64) G1Point {
	_, _, g1Gen, _ := bn254.Generators()
	var out bn254.G1Affine
	out.ScalarMultiplication(&g1Gen, big.NewInt(k))
	return g1FromAffine(out)
}

func scalarMulG2Gen(k int64) G2Point {
	_, _, _, g2Gen := bn254.Generators()
	var out bn254.G2Affine
	out.ScalarMultiplication(&g2Gen, big.NewInt(k))
	var p G2Point
	x0 := out.X.A0.Bytes()
	x1 := out.X.A1.Bytes()
	y0 := out.Y.A0.Bytes()
	y1 := out.Y.A1.Bytes()
	copy(p.X0[:], x0[:])
	copy(p.X1[:], x1[:])
	copy(p.Y0[:], y0[:])
	copy(p.Y1[:], y1[:])
	return p
}

func init() {
	alpha := scalarMulG1Gen(2)
	beta := scalarMulG2Gen(3)
	gamma := scalarMulG2Gen(5)

	COMMITMENT_VK = VerifyingKey{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Delta: scalarMulG2Gen(7),
		IC: []G1Point{
			scalarMulG1Gen(11),
			scalarMulG1Gen(13), // commitment
			scalarMulG1Gen(17), // nullifier_hash
		},
	}

	TRANSFER_VK = VerifyingKey{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Delta: scalarMulG2Gen(19),
		IC: []G1Point{
			scalarMulG1Gen(23),
			scalarMulG1Gen(29), // sender_commitment_before
			scalarMulG1Gen(31), // sender_commitment_after
			scalarMulG1Gen(37), // receiver_commitment_before
			scalarMulG1Gen(41), // receiver_commitment_after
			scalarMulG1Gen(43), // nullifier_hash
		},
	}

	WITHDRAW_VK = VerifyingKey{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Delta: scalarMulG2Gen(47),
		IC: []G1Point{
			scalarMulG1Gen(53),
			scalarMulG1Gen(59), // balance_commitment_before
			scalarMulG1Gen(61), // balance_commitment_after
			scalarMulG1Gen(67), // amount_field
			scalarMulG1Gen(71), // nullifier_hash
		},
	}
}
