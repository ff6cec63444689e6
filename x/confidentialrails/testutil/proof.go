package testutil

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
)

// BuildValidProof manufactures a Groth16-shaped proof that genuinely
// passes crypto.VerifyProof against a verifying key built the way vk.go
// builds COMMITMENT_VK/TRANSFER_VK/WITHDRAW_VK: alpha=2G1, beta=3G2,
// gamma=5G2, a caller-supplied delta scalar, and IC built from
// icScalars (one entry per element, IC[0] is the base point).
//
// There is no real trusted setup or circuit in this environment, but
// every point used here is one whose discrete log (relative to the
// BN254 generators) we know by construction, which lets us pick A, B, C
// algebraically so that the pairing equation
//
//	-A·B + alpha·beta + vk_x·gamma + C·delta = 0 (in Fr exponents)
//
// holds exactly. Fixing A = C = G1 (scalar 1) and solving for B's
// scalar keeps every point a genuine, on-curve, non-identity value.
//
// inputs are the exact 32-byte public-input words the caller intends to
// pass to crypto.VerifyProof (e.g. a commitment, or crypto.AmountField's
// output) — each is reinterpreted as a big-endian integer for the vk_x
// exponent arithmetic, matching what crypto.ScalarMulG1 does internally.
func BuildValidProof(deltaScalar int64, icScalars []int64, inputs [][crypto.FieldSize]byte) [crypto.ProofSize]byte {
	r := fr.Modulus()

	vkX := big.NewInt(icScalars[0])
	for i, x := range inputs {
		xInt := new(big.Int).SetBytes(x[:])
		term := new(big.Int).Mul(big.NewInt(icScalars[i+1]), xInt)
		vkX.Add(vkX, term)
	}
	vkX.Mod(vkX, r)

	b := big.NewInt(6) // alpha(2) * beta(3)
	b.Add(b, new(big.Int).Mul(big.NewInt(5), vkX)) // gamma(5) * vk_x
	b.Add(b, big.NewInt(deltaScalar))              // delta * C(scalar 1)
	b.Mod(b, r)

	_, _, g1Gen, g2Gen := bn254.Generators()

	var bAff bn254.G2Affine
	bAff.ScalarMultiplication(&g2Gen, b)

	var proof crypto.Proof
	proof.A = g1PointFromAffine(g1Gen)
	proof.C = g1PointFromAffine(g1Gen)
	proof.B = g2PointFromAffine(bAff)

	var out [crypto.ProofSize]byte
	copy(out[:], proof.Bytes())
	return out
}

// SmallFieldElement encodes a small non-negative integer as a 32-byte
// big-endian public-input word, for use with BuildValidProof.
func SmallFieldElement(v int64) [crypto.FieldSize]byte {
	var field [crypto.FieldSize]byte
	xb := big.NewInt(v).Bytes()
	copy(field[crypto.FieldSize-len(xb):], xb)
	return field
}

func g1PointFromAffine(a bn254.G1Affine) crypto.G1Point {
	var p crypto.G1Point
	xb := a.X.Bytes()
	yb := a.Y.Bytes()
	copy(p.X[:], xb[:])
	copy(p.Y[:], yb[:])
	return p
}

func g2PointFromAffine(a bn254.G2Affine) crypto.G2Point {
	var p crypto.G2Point
	x0 := a.X.A0.Bytes()
	x1 := a.X.A1.Bytes()
	y0 := a.Y.A0.Bytes()
	y1 := a.Y.A1.Bytes()
	copy(p.X0[:], x0[:])
	copy(p.X1[:], x1[:])
	copy(p.Y0[:], y0[:])
	copy(p.Y1[:], y1[:])
	return p
}
