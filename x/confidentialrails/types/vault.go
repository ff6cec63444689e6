package types

import "fmt"

// ZkVaultSize is the exact encoded length of a ZkVault record.
const ZkVaultSize = 32 + 32 + 64 + 32 + 8 + 8

// ZkVault holds the per-rail ElGamal public key and deposit counters that
// seed deposit-record identity (spec.md §3). EncryptedBalance and
// BalanceCommitment are reserved fields the spec marks as not yet load-
// bearing for the rail-level vault (per-asset balances live in
// VaultAssetState); they round-trip unchanged.
type ZkVault struct {
	Rail               AccountID
	ElgamalPubkey      Hash32
	EncryptedBalance   [64]byte
	BalanceCommitment  Hash32
	DepositCount       uint64
	TokenDepositCount  uint64
}

// Marshal encodes the vault into its fixed-size wire form.
func (v ZkVault) Marshal() []byte {
	b := make([]byte, ZkVaultSize)
	off := 0
	copy(b[off:off+32], v.Rail[:])
	off += 32
	copy(b[off:off+32], v.ElgamalPubkey[:])
	off += 32
	copy(b[off:off+64], v.EncryptedBalance[:])
	off += 64
	copy(b[off:off+32], v.BalanceCommitment[:])
	off += 32
	putUint64(b, off, v.DepositCount)
	off += 8
	putUint64(b, off, v.TokenDepositCount)
	return b
}

// UnmarshalZkVault decodes a ZkVault from its fixed-size wire form.
func UnmarshalZkVault(b []byte) (ZkVault, error) {
	if len(b) != ZkVaultSize {
		return ZkVault{}, fmt.Errorf("zkvault: expected %d bytes, got %d", ZkVaultSize, len(b))
	}
	var v ZkVault
	off := 0
	copy(v.Rail[:], b[off:off+32])
	off += 32
	copy(v.ElgamalPubkey[:], b[off:off+32])
	off += 32
	copy(v.EncryptedBalance[:], b[off:off+64])
	off += 64
	copy(v.BalanceCommitment[:], b[off:off+32])
	off += 32
	v.DepositCount = getUint64(b, off)
	off += 8
	v.TokenDepositCount = getUint64(b, off)
	return v, nil
}
