package types

import "fmt"

// HandshakeSize is the exact encoded length of a Handshake record.
const HandshakeSize = 32 + 32 + 32 + 1 + 8 + 8

// Handshake is the admission credential binding a commitment/nullifier
// pair to a rail (spec.md §3, §4.H). Identity is (Rail, NullifierHash):
// at most one handshake exists per nullifier.
type Handshake struct {
	Rail          AccountID
	Commitment    Hash32
	NullifierHash Hash32
	Active        bool
	CreatedAt     int64
	RevokedAt     int64
}

// Marshal encodes the handshake into its fixed-size wire form.
func (h Handshake) Marshal() []byte {
	b := make([]byte, HandshakeSize)
	off := 0
	copy(b[off:off+32], h.Rail[:])
	off += 32
	copy(b[off:off+32], h.Commitment[:])
	off += 32
	copy(b[off:off+32], h.NullifierHash[:])
	off += 32
	putBool(b, off, h.Active)
	off++
	putInt64(b, off, h.CreatedAt)
	off += 8
	putInt64(b, off, h.RevokedAt)
	return b
}

// UnmarshalHandshake decodes a Handshake from its fixed-size wire form.
func UnmarshalHandshake(b []byte) (Handshake, error) {
	if len(b) != HandshakeSize {
		return Handshake{}, fmt.Errorf("handshake: expected %d bytes, got %d", HandshakeSize, len(b))
	}
	var h Handshake
	off := 0
	copy(h.Rail[:], b[off:off+32])
	off += 32
	copy(h.Commitment[:], b[off:off+32])
	off += 32
	copy(h.NullifierHash[:], b[off:off+32])
	off += 32
	h.Active = getBool(b, off)
	off++
	h.CreatedAt = getInt64(b, off)
	off += 8
	h.RevokedAt = getInt64(b, off)
	return h, nil
}
