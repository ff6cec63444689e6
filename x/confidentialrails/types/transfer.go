package types

import "fmt"

// TransferRecordSize is the exact encoded length of a TransferRecord.
const TransferRecordSize = 32 + 32 + 32 + 32 + 32 + 32 + 1 + 32 + 8

// TransferRecord audits a confidential transfer (spec.md §3, §4.G).
// Identity is (SenderRail, ReceiverRail, TransferNonce); a duplicate nonce
// for the same rail pair fails at record-address collision.
type TransferRecord struct {
	SenderRail        AccountID
	ReceiverRail      AccountID
	SenderCommitment  Hash32
	ReceiverCommitment Hash32
	NullifierHash     Hash32
	ProofHash         Hash32
	IsToken           bool
	TokenMint         AccountID
	CreatedAt         int64
}

// Marshal encodes the transfer record into its fixed-size wire form.
func (t TransferRecord) Marshal() []byte {
	b := make([]byte, TransferRecordSize)
	off := 0
	copy(b[off:off+32], t.SenderRail[:])
	off += 32
	copy(b[off:off+32], t.ReceiverRail[:])
	off += 32
	copy(b[off:off+32], t.SenderCommitment[:])
	off += 32
	copy(b[off:off+32], t.ReceiverCommitment[:])
	off += 32
	copy(b[off:off+32], t.NullifierHash[:])
	off += 32
	copy(b[off:off+32], t.ProofHash[:])
	off += 32
	putBool(b, off, t.IsToken)
	off++
	copy(b[off:off+32], t.TokenMint[:])
	off += 32
	putInt64(b, off, t.CreatedAt)
	return b
}

// UnmarshalTransferRecord decodes a TransferRecord from its fixed-size wire form.
func UnmarshalTransferRecord(b []byte) (TransferRecord, error) {
	if len(b) != TransferRecordSize {
		return TransferRecord{}, fmt.Errorf("transfer: expected %d bytes, got %d", TransferRecordSize, len(b))
	}
	var t TransferRecord
	off := 0
	copy(t.SenderRail[:], b[off:off+32])
	off += 32
	copy(t.ReceiverRail[:], b[off:off+32])
	off += 32
	copy(t.SenderCommitment[:], b[off:off+32])
	off += 32
	copy(t.ReceiverCommitment[:], b[off:off+32])
	off += 32
	copy(t.NullifierHash[:], b[off:off+32])
	off += 32
	copy(t.ProofHash[:], b[off:off+32])
	off += 32
	t.IsToken = getBool(b, off)
	off++
	copy(t.TokenMint[:], b[off:off+32])
	off += 32
	t.CreatedAt = getInt64(b, off)
	return t, nil
}

// ProofHashFromProof returns the first 32 bytes of a 256-byte Groth16
// proof blob, per spec.md §3 "proof_hash: 32B (first 32 bytes of the
// 256-byte proof)".
func ProofHashFromProof(proof [256]byte) Hash32 {
	var h Hash32
	copy(h[:], proof[:32])
	return h
}
