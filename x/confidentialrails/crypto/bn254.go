// Package crypto implements the BN254 curve primitives and the Groth16
// verifier that admits every confidential state transition in the
// confidentialrails module. It plays the role the teacher's
// x/privacy/crypto package plays for secp256k1 Pedersen commitments, but
// targets the pairing-friendly BN254 curve used by the Groth16 proving
// system instead.
package crypto

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// FieldSize is the byte length of a BN254 base-field element, and therefore
// of every G1 coordinate.
const FieldSize = 32

// G1Size is the encoded length of an uncompressed G1 point: X || Y.
const G1Size = 2 * FieldSize

// G2Size is the encoded length of an uncompressed G2 point: X0 || X1 || Y0 || Y1.
const G2Size = 4 * FieldSize

// ProofSize is the encoded length of a Groth16 proof: A (G1) || B (G2) || C (G1).
const ProofSize = G1Size + G2Size + G1Size

// PairingInputSize is the encoded length of the 4-pair pairing input built
// during verification.
const PairingInputSize = 4 * (G1Size + G2Size)

// modulus is the BN254 base field prime p, used for the G1 negation in
// VerifyProof step 4.
var modulus = func() *big.Int {
	m, _ := new(big.Int).SetString("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47", 16)
	return m
}()

// G1Point is a BN254 G1 affine point as a pair of big-endian 32-byte
// base-field coordinates, the exact on-the-wire shape spec.md §6 mandates.
type G1Point struct {
	X [FieldSize]byte
	Y [FieldSize]byte
}

// G2Point is a BN254 G2 affine point as four big-endian 32-byte coordinates
// in the order the gnark-crypto quadratic-extension type expects: X.A0,
// X.A1, Y.A0, Y.A1.
type G2Point struct {
	X0 [FieldSize]byte
	X1 [FieldSize]byte
	Y0 [FieldSize]byte
	Y1 [FieldSize]byte
}

// ParseG1 reads a 64-byte uncompressed G1 point.
func ParseG1(b []byte) (G1Point, error) {
	var p G1Point
	if len(b) != G1Size {
		return p, fmt.Errorf("crypto: G1 point must be %d bytes, got %d", G1Size, len(b))
	}
	copy(p.X[:], b[:FieldSize])
	copy(p.Y[:], b[FieldSize:])
	return p, nil
}

// ParseG2 reads a 128-byte uncompressed G2 point.
func ParseG2(b []byte) (G2Point, error) {
	var p G2Point
	if len(b) != G2Size {
		return p, fmt.Errorf("crypto: G2 point must be %d bytes, got %d", G2Size, len(b))
	}
	copy(p.X0[:], b[0:32])
	copy(p.X1[:], b[32:64])
	copy(p.Y0[:], b[64:96])
	copy(p.Y1[:], b[96:128])
	return p, nil
}

// Bytes encodes the G1 point back to its 64-byte wire form.
func (p G1Point) Bytes() []byte {
	out := make([]byte, G1Size)
	copy(out[:FieldSize], p.X[:])
	copy(out[FieldSize:], p.Y[:])
	return out
}

// Bytes encodes the G2 point back to its 128-byte wire form.
func (p G2Point) Bytes() []byte {
	out := make([]byte, G2Size)
	copy(out[0:32], p.X0[:])
	copy(out[32:64], p.X1[:])
	copy(out[64:96], p.Y0[:])
	copy(out[96:128], p.Y1[:])
	return out
}

func (p G1Point) affine() bn254.G1Affine {
	var a bn254.G1Affine
	a.X.SetBytes(p.X[:])
	a.Y.SetBytes(p.Y[:])
	return a
}

func g1FromAffine(a bn254.G1Affine) G1Point {
	var p G1Point
	xBytes := a.X.Bytes()
	yBytes := a.Y.Bytes()
	copy(p.X[:], xBytes[:])
	copy(p.Y[:], yBytes[:])
	return p
}

func (p G2Point) affine() bn254.G2Affine {
	var a bn254.G2Affine
	a.X.A0.SetBytes(p.X0[:])
	a.X.A1.SetBytes(p.X1[:])
	a.Y.A0.SetBytes(p.Y0[:])
	a.Y.A1.SetBytes(p.Y1[:])
	return a
}

// AddG1 computes a + b on the BN254 G1 group.
func AddG1(a, b G1Point) (G1Point, error) {
	aAff := a.affine()
	bAff := b.affine()
	var aJac, bJac bn254.G1Jac
	aJac.FromAffine(&aAff)
	bJac.FromAffine(&bAff)
	aJac.AddAssign(&bJac)
	var result bn254.G1Affine
	result.FromJacobian(&aJac)
	return g1FromAffine(result), nil
}

// ScalarMulG1 computes scalar * p on the BN254 G1 group. scalar is a
// 32-byte big-endian encoding of the field element, per the public-input
// wire format spec.md §6 defines.
func ScalarMulG1(p G1Point, scalar [FieldSize]byte) (G1Point, error) {
	aAff := p.affine()
	s := new(big.Int).SetBytes(scalar[:])
	var result bn254.G1Affine
	result.ScalarMultiplication(&aAff, s)
	return g1FromAffine(result), nil
}

// NegateG1 implements spec.md §4.B step 4: componentwise negation of the
// y-coordinate via a plain big-endian subtraction from the field modulus,
// without a final modular reduction. If A.y == 0 the result is p itself, a
// non-canonical field element; see DESIGN.md for why this is preserved
// rather than "fixed".
func NegateG1(p G1Point) G1Point {
	y := new(big.Int).SetBytes(p.Y[:])
	negY := new(big.Int).Sub(modulus, y)
	var out G1Point
	out.X = p.X
	negBytes := negY.Bytes()
	// negY is at most `modulus`, which fits in FieldSize bytes; left-pad.
	copy(out.Y[FieldSize-len(negBytes):], negBytes)
	return out
}

// PairingCheck evaluates the product of the four (G1, G2) Miller loops and
// reports whether it equals the identity element of the target group,
// exactly the condition spec.md §4.B step 6 requires. Any malformed point
// (e.g. not on the curve) is reported as a cryptographic-primitive failure,
// which callers collapse into ProofVerificationFailed per spec.md §7.
func PairingCheck(g1s [4]G1Point, g2s [4]G2Point) (bool, error) {
	g1Affine := make([]bn254.G1Affine, 4)
	g2Affine := make([]bn254.G2Affine, 4)
	for i := 0; i < 4; i++ {
		g1Affine[i] = g1s[i].affine()
		g2Affine[i] = g2s[i].affine()
		if !g1Affine[i].IsOnCurve() || !g2Affine[i].IsOnCurve() {
			return false, fmt.Errorf("crypto: pairing input point not on curve")
		}
	}
	ok, err := bn254.PairingCheck(g1Affine, g2Affine)
	if err != nil {
		return false, fmt.Errorf("crypto: pairing evaluation failed: %w", err)
	}
	return ok, nil
}

// fieldElementBytes re-encodes a field element deterministically as 32
// big-endian bytes.
func fieldElementBytes(e *fp.Element) [FieldSize]byte {
	var out [FieldSize]byte
	b := e.Bytes()
	copy(out[:], b[:])
	return out
}
