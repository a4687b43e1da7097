package contact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a virtually unique contact id, optionally salted with the
// id of the parent that spawned the peer. The id is a sha256 digest of a
// random UUID plus the parent id, suffixed with the creation timestamp in
// unix seconds.
func NewID(parentID string) string {
	seed := uuid.New().String() + parentID
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:]) + fmt.Sprintf("%d", time.Now().Unix())
}
