package stencil

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// HashContent computes the xxHash of sample content as a hex string.
// The trainer's in-run dedupe and the persisted learn journal use the
// same hash so their notions of "already seen" agree.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}
