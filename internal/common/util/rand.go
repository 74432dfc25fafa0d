package util

import (
	"crypto/rand"
	"strings"
	"sync"

	"github.com/oklog/ulid"
)

var (
	entropy   = ulid.Monotonic(rand.Reader, 0)
	entropyMu sync.Mutex
)

// NewULID returns a lower-cased ULID, used to identify submission runs in
// logs. ULIDs sort by creation time, which makes batches easy to correlate.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Now(), entropy).String())
}
