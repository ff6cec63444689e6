package types

import "fmt"

// DepositRecordSize is the exact encoded length of a DepositRecord.
const DepositRecordSize = 32 + 32 + 64 + 32 + 1 + 8

// DepositRecord audits a single native deposit (spec.md §3, §4.G). Its
// identity includes the zk_vault deposit_count at creation time (see
// types.DeriveDepositID), so records are indexed by a per-vault sequence.
type DepositRecord struct {
	Rail             AccountID
	Sender           AccountID
	EncryptedAmount  [64]byte
	Commitment       Hash32
	IsWithdrawn      bool
	CreatedAt        int64
}

// Marshal encodes the deposit record into its fixed-size wire form.
func (d DepositRecord) Marshal() []byte {
	b := make([]byte, DepositRecordSize)
	off := 0
	copy(b[off:off+32], d.Rail[:])
	off += 32
	copy(b[off:off+32], d.Sender[:])
	off += 32
	copy(b[off:off+64], d.EncryptedAmount[:])
	off += 64
	copy(b[off:off+32], d.Commitment[:])
	off += 32
	putBool(b, off, d.IsWithdrawn)
	off++
	putInt64(b, off, d.CreatedAt)
	return b
}

// UnmarshalDepositRecord decodes a DepositRecord from its fixed-size wire form.
func UnmarshalDepositRecord(b []byte) (DepositRecord, error) {
	if len(b) != DepositRecordSize {
		return DepositRecord{}, fmt.Errorf("deposit: expected %d bytes, got %d", DepositRecordSize, len(b))
	}
	var d DepositRecord
	off := 0
	copy(d.Rail[:], b[off:off+32])
	off += 32
	copy(d.Sender[:], b[off:off+32])
	off += 32
	copy(d.EncryptedAmount[:], b[off:off+64])
	off += 64
	copy(d.Commitment[:], b[off:off+32])
	off += 32
	d.IsWithdrawn = getBool(b, off)
	off++
	d.CreatedAt = getInt64(b, off)
	return d, nil
}

// TokenDepositRecordSize is the exact encoded length of a TokenDepositRecord.
const TokenDepositRecordSize = 32 + 32 + 32 + 1 + 64 + 32 + 1 + 8

// TokenDepositRecord is the token-asset counterpart of DepositRecord
// (spec.md §4.G "Token variants").
type TokenDepositRecord struct {
	Rail             AccountID
	Sender           AccountID
	TokenMint        AccountID
	Decimals         uint8
	EncryptedAmount  [64]byte
	Commitment       Hash32
	IsWithdrawn      bool
	CreatedAt        int64
}

// Marshal encodes the token deposit record into its fixed-size wire form.
func (d TokenDepositRecord) Marshal() []byte {
	b := make([]byte, TokenDepositRecordSize)
	off := 0
	copy(b[off:off+32], d.Rail[:])
	off += 32
	copy(b[off:off+32], d.Sender[:])
	off += 32
	copy(b[off:off+32], d.TokenMint[:])
	off += 32
	b[off] = d.Decimals
	off++
	copy(b[off:off+64], d.EncryptedAmount[:])
	off += 64
	copy(b[off:off+32], d.Commitment[:])
	off += 32
	putBool(b, off, d.IsWithdrawn)
	off++
	putInt64(b, off, d.CreatedAt)
	return b
}

// UnmarshalTokenDepositRecord decodes a TokenDepositRecord from its
// fixed-size wire form.
func UnmarshalTokenDepositRecord(b []byte) (TokenDepositRecord, error) {
	if len(b) != TokenDepositRecordSize {
		return TokenDepositRecord{}, fmt.Errorf("tokendeposit: expected %d bytes, got %d", TokenDepositRecordSize, len(b))
	}
	var d TokenDepositRecord
	off := 0
	copy(d.Rail[:], b[off:off+32])
	off += 32
	copy(d.Sender[:], b[off:off+32])
	off += 32
	copy(d.TokenMint[:], b[off:off+32])
	off += 32
	d.Decimals = b[off]
	off++
	copy(d.EncryptedAmount[:], b[off:off+64])
	off += 64
	copy(d.Commitment[:], b[off:off+32])
	off += 32
	d.IsWithdrawn = getBool(b, off)
	off++
	d.CreatedAt = getInt64(b, off)
	return d, nil
}
