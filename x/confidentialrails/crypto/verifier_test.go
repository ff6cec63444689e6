package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bn254crypto "github.com/hikari-chain/confidential-rails/x/confidentialrails/crypto"
)

func TestParseProofRejectsWrongSize(t *testing.T) {
	_, err := bn254crypto.ParseProof(make([]byte, bn254crypto.ProofSize-1))
	require.Error(t, err)
}

func TestParseProofRoundTrip(t *testing.T) {
	raw := make([]byte, bn254crypto.ProofSize)
	raw[0] = 0x01
	raw[bn254crypto.G1Size] = 0x02
	raw[bn254crypto.ProofSize-1] = 0x03

	proof, err := bn254crypto.ParseProof(raw)
	require.NoError(t, err)
	require.Equal(t, raw, proof.Bytes())
}

func TestNegateG1IsInvolution(t *testing.T) {
	p := bn254crypto.G1Point{}
	p.Y[31] = 0x05 // small, well below the modulus, so no wraparound edge case
	p.X[31] = 0x09

	once := bn254crypto.NegateG1(p)
	twice := bn254crypto.NegateG1(once)
	require.Equal(t, p, twice)
}

func TestNegateG1ZeroYIsNonCanonical(t *testing.T) {
	// A.y == 0 is the edge case spec.md §9 Open Question 1 calls out: the
	// result is p itself, not reduced modulo p.
	p := bn254crypto.G1Point{}
	neg := bn254crypto.NegateG1(p)
	require.NotEqual(t, [32]byte{}, neg.Y)
}

func TestVerifyProofRejectsWrongInputCount(t *testing.T) {
	proof := bn254crypto.Proof{}
	ok, err := bn254crypto.VerifyProof(proof, nil, bn254crypto.COMMITMENT_VK)
	require.False(t, ok)
	require.ErrorIs(t, err, bn254crypto.ErrInvalidProofInputs)
}

func TestAmountFieldEncoding(t *testing.T) {
	field := bn254crypto.AmountField(1000)
	require.Equal(t, byte(1000&0xff), field[0])
	require.Equal(t, byte(1000>>8), field[1])
	for i := 8; i < 32; i++ {
		require.Zero(t, field[i])
	}
}

func TestScalarMulAndAddG1(t *testing.T) {
	// IC[0] + IC[1]*0 should equal IC[0] for any verifying key: multiplying
	// by the zero scalar must yield the group identity contribution.
	vk := bn254crypto.COMMITMENT_VK
	zero := [bn254crypto.FieldSize]byte{}
	t1, err := bn254crypto.ScalarMulG1(vk.IC[1], zero)
	require.NoError(t, err)

	sum, err := bn254crypto.AddG1(vk.IC[0], t1)
	require.NoError(t, err)
	require.Equal(t, vk.IC[0].X, sum.X)
	require.Equal(t, vk.IC[0].Y, sum.Y)
}
