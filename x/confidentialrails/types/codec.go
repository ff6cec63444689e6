package types

import "encoding/binary"

// Shared little helpers for the fixed-size record encodings in this
// package. Records are hand-rolled fixed-width byte layouts rather than
// protobuf messages: spec.md §9 permits "any encoding that is
// bit-equivalent" for persisted records (only the proof/point/commitment
// sizes in §6 are part of the cross-implementation wire contract), and
// there is no generated-code toolchain wired into this module.

func putUint64(b []byte, off int, v uint64) {
	binary.BigEndian.PutUint64(b[off:off+8], v)
}

func getUint64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off : off+8])
}

func putInt64(b []byte, off int, v int64) {
	binary.BigEndian.PutUint64(b[off:off+8], uint64(v))
}

func getInt64(b []byte, off int) int64 {
	return int64(binary.BigEndian.Uint64(b[off : off+8]))
}

func putBool(b []byte, off int, v bool) {
	if v {
		b[off] = 1
	} else {
		b[off] = 0
	}
}

func getBool(b []byte, off int) bool {
	return b[off] != 0
}
