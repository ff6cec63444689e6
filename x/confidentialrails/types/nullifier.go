package types

import "fmt"

// NullifierRecordSize is the exact encoded length of a NullifierRegistry record.
const NullifierRecordSize = 32 + 32 + 1 + 8

// NullifierRegistry is a one-shot record preventing double-spend
// (spec.md §3, §4.E). Identity is (Rail, NullifierHash); once Spent is
// true the record is immutable.
type NullifierRegistry struct {
	Rail          AccountID
	NullifierHash Hash32
	Spent         bool
	SpentAt       int64
}

// Marshal encodes the nullifier record into its fixed-size wire form.
func (n NullifierRegistry) Marshal() []byte {
	b := make([]byte, NullifierRecordSize)
	off := 0
	copy(b[off:off+32], n.Rail[:])
	off += 32
	copy(b[off:off+32], n.NullifierHash[:])
	off += 32
	putBool(b, off, n.Spent)
	off++
	putInt64(b, off, n.SpentAt)
	return b
}

// UnmarshalNullifierRegistry decodes a NullifierRegistry from its
// fixed-size wire form.
func UnmarshalNullifierRegistry(b []byte) (NullifierRegistry, error) {
	if len(b) != NullifierRecordSize {
		return NullifierRegistry{}, fmt.Errorf("nullifier: expected %d bytes, got %d", NullifierRecordSize, len(b))
	}
	var n NullifierRegistry
	off := 0
	copy(n.Rail[:], b[off:off+32])
	off += 32
	copy(n.NullifierHash[:], b[off:off+32])
	off += 32
	n.Spent = getBool(b, off)
	off++
	n.SpentAt = getInt64(b, off)
	return n, nil
}
