package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// AccountID is a 32-byte account identifier, the same size the host
// runtime uses for its own addresses (spec.md §6). Rails, senders,
// receivers and token mints are all identified this way.
type AccountID [32]byte

// Hash32 is a 32-byte hash: commitments, nullifier hashes and asset keys
// all share this shape per spec.md §3/§6.
type Hash32 [32]byte

// SolAssetSeed is the address-derivation seed for the native asset, per
// spec.md §6: "asset_key_bytes = SOL_ASSET_SEED = \"sol\" for native".
// Note this is distinct from the zero-valued AssetKey stored on
// VaultAssetState for the native asset (spec.md §3).
var SolAssetSeed = []byte("sol")

func deriveID(parts ...[]byte) AccountID {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var id AccountID
	copy(id[:], h.Sum(nil))
	return id
}

// DeriveRailID derives the rail account id: ("rail", authority_id).
func DeriveRailID(authority AccountID) AccountID {
	return deriveID([]byte("rail"), authority[:])
}

// DeriveZkVaultID derives the zk_vault account id: ("zk_vault", rail_id).
func DeriveZkVaultID(rail AccountID) AccountID {
	return deriveID([]byte("zk_vault"), rail[:])
}

// DeriveVaultPoolID derives the vault_pool account id: ("vault_pool", rail_id).
func DeriveVaultPoolID(rail AccountID) AccountID {
	return deriveID([]byte("vault_pool"), rail[:])
}

// assetSeedBytes returns the addressing seed for an asset key: the literal
// "sol" for the native asset (32 zero bytes), or the mint id otherwise.
func assetSeedBytes(assetKey Hash32) []byte {
	if assetKey == (Hash32{}) {
		return SolAssetSeed
	}
	return assetKey[:]
}

// DeriveAssetVaultID derives the asset_vault account id:
// ("asset_vault", rail_id, asset_key_bytes).
func DeriveAssetVaultID(rail AccountID, assetKey Hash32) AccountID {
	return deriveID([]byte("asset_vault"), rail[:], assetSeedBytes(assetKey))
}

// DeriveHandshakeID derives the handshake account id:
// ("handshake", rail_id, nullifier_hash).
func DeriveHandshakeID(rail AccountID, nullifierHash Hash32) AccountID {
	return deriveID([]byte("handshake"), rail[:], nullifierHash[:])
}

// DeriveNullifierID derives the nullifier registry account id:
// ("nullifier", rail_id, nullifier_hash).
func DeriveNullifierID(rail AccountID, nullifierHash Hash32) AccountID {
	return deriveID([]byte("nullifier"), rail[:], nullifierHash[:])
}

// DeriveDepositID derives the deposit record account id:
// ("deposit", rail_id, sender_id, deposit_count as LE u64).
func DeriveDepositID(rail, sender AccountID, depositCount uint64) AccountID {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], depositCount)
	return deriveID([]byte("deposit"), rail[:], sender[:], ctr[:])
}

// DeriveTokenDepositID derives the token deposit record account id:
// ("token_deposit", rail_id, sender_id, mint_id, token_deposit_count as LE u64).
func DeriveTokenDepositID(rail, sender, mint AccountID, tokenDepositCount uint64) AccountID {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], tokenDepositCount)
	return deriveID([]byte("token_deposit"), rail[:], sender[:], mint[:], ctr[:])
}

// DeriveTransferID derives the transfer record account id:
// ("transfer", sender_rail_id, receiver_rail_id, transfer_nonce as LE i64).
func DeriveTransferID(senderRail, receiverRail AccountID, transferNonce int64) AccountID {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], uint64(transferNonce))
	return deriveID([]byte("transfer"), senderRail[:], receiverRail[:], nonce[:])
}
