package keeper

import "encoding/binary"

func putUint64LE(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func getUint64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
