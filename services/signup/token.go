package signup

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Verification links accept two shapes: the 22-character lowercase hex
// tokens issued by the previous system, and the canonical dashed UUID form
// issued today (case-insensitive). Anything else is rejected before any
// lookup happens.
var tokenPattern = regexp.MustCompile(`^(?:[0-9a-f]{22}|(?i:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}))$`)

// IssueToken returns a fresh random v4 UUID and its expiry instant. Each
// call produces a new token, so reissuing always invalidates the previous
// link.
func IssueToken(lifetime time.Duration) (string, time.Time) {
	return uuid.NewString(), time.Now().Add(lifetime)
}

func TokenShapeValid(token string) bool {
	return tokenPattern.MatchString(token)
}
