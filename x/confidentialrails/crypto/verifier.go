package crypto

import "fmt"

// Proof is a parsed Groth16 proof: A ∈ G1, B ∈ G2, C ∈ G1.
type Proof struct {
	A G1Point
	B G2Point
	C G1Point
}

// ParseProof decodes a fixed 256-byte proof blob: A (64B) || B (128B) || C (64B).
func ParseProof(raw []byte) (Proof, error) {
	var p Proof
	if len(raw) != ProofSize {
		return p, fmt.Errorf("crypto: proof must be %d bytes, got %d", ProofSize, len(raw))
	}
	a, err := ParseG1(raw[0:G1Size])
	if err != nil {
		return p, err
	}
	b, err := ParseG2(raw[G1Size : G1Size+G2Size])
	if err != nil {
		return p, err
	}
	c, err := ParseG1(raw[G1Size+G2Size:])
	if err != nil {
		return p, err
	}
	p.A, p.B, p.C = a, b, c
	return p, nil
}

// Bytes re-encodes the proof to its 256-byte wire form.
func (p Proof) Bytes() []byte {
	out := make([]byte, 0, ProofSize)
	out = append(out, p.A.Bytes()...)
	out = append(out, p.B.Bytes()...)
	out = append(out, p.C.Bytes()...)
	return out
}

// VerifyingKey holds the four fixed points of a Groth16 trusted setup plus
// the ordered input-commitment basis IC[0..k], exactly spec.md §4.B.
type VerifyingKey struct {
	Alpha G1Point
	Beta  G2Point
	Gamma G2Point
	Delta G2Point
	IC    []G1Point
}

// AmountField encodes a u64 amount as the 32-byte public input spec.md
// §4.C mandates: little-endian u64 in the first 8 bytes, 24 zero bytes
// after.
func AmountField(amount uint64) [FieldSize]byte {
	var out [FieldSize]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(amount >> (8 * i))
	}
	return out
}

// VerifyProof implements the Groth16 verification algorithm of spec.md
// §4.B steps 1-6. publicInputs are ordered 32-byte big-endian field
// elements, one per IC entry after IC[0].
func VerifyProof(proof Proof, publicInputs [][FieldSize]byte, vk VerifyingKey) (bool, error) {
	if len(publicInputs)+1 != len(vk.IC) {
		return false, ErrInvalidProofInputs
	}

	vkX := vk.IC[0]
	for i, x := range publicInputs {
		t, err := ScalarMulG1(vk.IC[i+1], x)
		if err != nil {
			return false, ErrProofVerificationFailed
		}
		vkX, err = AddG1(vkX, t)
		if err != nil {
			return false, ErrProofVerificationFailed
		}
	}

	negA := NegateG1(proof.A)

	g1s := [4]G1Point{negA, vk.Alpha, vkX, proof.C}
	g2s := [4]G2Point{proof.B, vk.Beta, vk.Gamma, vk.Delta}

	ok, err := PairingCheck(g1s, g2s)
	if err != nil {
		return false, ErrProofVerificationFailed
	}
	return ok, nil
}
