package types

import "fmt"

const (
	railFlagSealed = 1 << iota
	railFlagActive
	railFlagPaused
)

// RailSize is the exact encoded length of a Rail record.
const RailSize = 32 + 1 + 1 + 1 + 8 + 8 + 8 + 32 + 1 + 1

// ProtocolVersion is stamped into every new rail, per spec.md §6.
const ProtocolVersion uint8 = 2

// Rail is an authority-controlled namespace for confidential state
// (spec.md §3). All per-asset balances, handshakes, and nullifiers are
// scoped to a rail.
type Rail struct {
	Authority         AccountID
	InstitutionType   uint8
	ComplianceLevel   uint8
	Sealed            bool
	Active            bool
	Paused            bool
	TotalHandshakes   uint64
	CreatedAt         int64
	UpdatedAt         int64
	AuditSeal         Hash32
	Version           uint8
	DeactivationReason uint8
}

// Marshal encodes the rail into its fixed-size wire form.
func (r Rail) Marshal() []byte {
	b := make([]byte, RailSize)
	copy(b[0:32], r.Authority[:])
	b[32] = r.InstitutionType
	b[33] = r.ComplianceLevel

	var flags byte
	if r.Sealed {
		flags |= railFlagSealed
	}
	if r.Active {
		flags |= railFlagActive
	}
	if r.Paused {
		flags |= railFlagPaused
	}
	b[34] = flags

	putUint64(b, 35, r.TotalHandshakes)
	putInt64(b, 43, r.CreatedAt)
	putInt64(b, 51, r.UpdatedAt)
	copy(b[59:91], r.AuditSeal[:])
	b[91] = r.Version
	b[92] = r.DeactivationReason
	return b
}

// UnmarshalRail decodes a Rail from its fixed-size wire form.
func UnmarshalRail(b []byte) (Rail, error) {
	if len(b) != RailSize {
		return Rail{}, fmt.Errorf("rail: expected %d bytes, got %d", RailSize, len(b))
	}
	var r Rail
	copy(r.Authority[:], b[0:32])
	r.InstitutionType = b[32]
	r.ComplianceLevel = b[33]

	flags := b[34]
	r.Sealed = flags&railFlagSealed != 0
	r.Active = flags&railFlagActive != 0
	r.Paused = flags&railFlagPaused != 0

	r.TotalHandshakes = getUint64(b, 35)
	r.CreatedAt = getInt64(b, 43)
	r.UpdatedAt = getInt64(b, 51)
	copy(r.AuditSeal[:], b[59:91])
	r.Version = b[91]
	r.DeactivationReason = b[92]
	return r, nil
}
