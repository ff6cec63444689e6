package types

// Store key prefixes, one byte each, mirroring the teacher's
// x/privacy/types/keys.go prefix-builder pattern. Every persisted record is
// stored under its prefix followed by its deterministically derived
// AccountID (see ids.go), so lookups never need a secondary index.
var (
	RailKeyPrefix             = []byte{0x01}
	ZkVaultKeyPrefix          = []byte{0x02}
	VaultAssetStateKeyPrefix  = []byte{0x03}
	HandshakeKeyPrefix        = []byte{0x04}
	NullifierKeyPrefix        = []byte{0x05}
	DepositRecordKeyPrefix    = []byte{0x06}
	TokenDepositRecordPrefix  = []byte{0x07}
	TransferRecordKeyPrefix   = []byte{0x08}
	NativeVaultBalanceKey     = []byte{0x09} // per-rail native vault balance, keyed by the rail's vault_pool id
	TokenVaultBalanceKeyPrefix = []byte{0x0A} // per (rail, mint) token vault balance
)

func storeKey(prefix []byte, id AccountID) []byte {
	key := make([]byte, 0, len(prefix)+len(id))
	key = append(key, prefix...)
	key = append(key, id[:]...)
	return key
}

// RailKey returns the store key for a Rail record.
func RailKey(rail AccountID) []byte { return storeKey(RailKeyPrefix, rail) }

// ZkVaultKey returns the store key for a ZkVault record.
func ZkVaultKey(rail AccountID) []byte { return storeKey(ZkVaultKeyPrefix, rail) }

// VaultAssetStateKey returns the store key for a VaultAssetState record,
// addressed by its derived asset_vault id (rail + asset_key_bytes).
func VaultAssetStateKey(assetVault AccountID) []byte {
	return storeKey(VaultAssetStateKeyPrefix, assetVault)
}

// HandshakeKey returns the store key for a Handshake record.
func HandshakeKey(handshake AccountID) []byte { return storeKey(HandshakeKeyPrefix, handshake) }

// NullifierKey returns the store key for a NullifierRegistry record.
func NullifierKey(nullifier AccountID) []byte { return storeKey(NullifierKeyPrefix, nullifier) }

// DepositRecordKey returns the store key for a DepositRecord.
func DepositRecordKey(deposit AccountID) []byte { return storeKey(DepositRecordKeyPrefix, deposit) }

// TokenDepositRecordKey returns the store key for a TokenDepositRecord.
func TokenDepositRecordKey(deposit AccountID) []byte {
	return storeKey(TokenDepositRecordPrefix, deposit)
}

// TransferRecordKey returns the store key for a TransferRecord.
func TransferRecordKey(transfer AccountID) []byte {
	return storeKey(TransferRecordKeyPrefix, transfer)
}

// NativeVaultKey returns the store key for a rail's program-owned native
// vault balance (vault_pool address, spec.md §6).
func NativeVaultKey(vaultPool AccountID) []byte {
	return storeKey(NativeVaultBalanceKey, vaultPool)
}

// TokenVaultKey returns the store key for a rail's program-owned token
// vault balance for a given asset_vault address.
func TokenVaultKey(assetVault AccountID) []byte {
	return storeKey(TokenVaultBalanceKeyPrefix, assetVault)
}
