package types

import "fmt"

// VaultAssetStateSize is the exact encoded length of a VaultAssetState record.
const VaultAssetStateSize = 32 + 32 + 32 + 64 + 8

// VaultAssetState is the per-(rail, asset_key) encrypted balance ledger
// (spec.md §3, §4.F). AssetKey is 32 zero bytes for the native asset, or
// the token-mint identifier otherwise. It is created lazily on first
// deposit and thereafter every update must preserve the (Rail, AssetKey)
// pair.
type VaultAssetState struct {
	Rail               AccountID
	AssetKey           Hash32
	BalanceCommitment  Hash32
	EncryptedBalance   [64]byte
	UpdatedAt          int64
}

// Marshal encodes the asset state into its fixed-size wire form.
func (a VaultAssetState) Marshal() []byte {
	b := make([]byte, VaultAssetStateSize)
	off := 0
	copy(b[off:off+32], a.Rail[:])
	off += 32
	copy(b[off:off+32], a.AssetKey[:])
	off += 32
	copy(b[off:off+32], a.BalanceCommitment[:])
	off += 32
	copy(b[off:off+64], a.EncryptedBalance[:])
	off += 64
	putInt64(b, off, a.UpdatedAt)
	return b
}

// UnmarshalVaultAssetState decodes a VaultAssetState from its fixed-size
// wire form.
func UnmarshalVaultAssetState(b []byte) (VaultAssetState, error) {
	if len(b) != VaultAssetStateSize {
		return VaultAssetState{}, fmt.Errorf("assetstate: expected %d bytes, got %d", VaultAssetStateSize, len(b))
	}
	var a VaultAssetState
	off := 0
	copy(a.Rail[:], b[off:off+32])
	off += 32
	copy(a.AssetKey[:], b[off:off+32])
	off += 32
	copy(a.BalanceCommitment[:], b[off:off+32])
	off += 32
	copy(a.EncryptedBalance[:], b[off:off+64])
	off += 64
	a.UpdatedAt = getInt64(b, off)
	return a, nil
}

// IsNativeAsset reports whether AssetKey is the native-asset sentinel
// (32 zero bytes, spec.md GLOSSARY "Asset key").
func (a VaultAssetState) IsNativeAsset() bool {
	return a.AssetKey == (Hash32{})
}
