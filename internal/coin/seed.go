package coin

import (
	"encoding/binary"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// DeriveSeed maps a session ID to a simulator seed, so a search can be
// replayed from its session ID alone when the caller supplied no seed.
func DeriveSeed(id uuid.UUID) int64 {
	shake := sha3.NewShake256()
	shake.Write(id[:])

	var buf [8]byte
	shake.Read(buf[:])
	return int64(binary.BigEndian.Uint64(buf[:]))
}
