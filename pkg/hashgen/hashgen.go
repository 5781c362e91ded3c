package hashgen

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HashLength is the number of characters in a share token. Eight characters
// of base64url keep ~48 bits of the digest, which is plenty for per-résumé
// share links but still collidable; the registry enforces uniqueness with a
// unique index and retries generation on a violation.
const HashLength = 8

// Generator produces URL-safe share tokens for curricula.
type Generator interface {
	Generate(curriculumID string) string
}

type shaGenerator struct {
	now func() time.Time
}

// New returns the default generator: a fresh random 128-bit identifier mixed
// with the owning curriculum id and a nanosecond timestamp, SHA-256 hashed,
// base64url encoded without padding, truncated to HashLength characters.
func New() Generator {
	return &shaGenerator{now: time.Now}
}

// NewWithNow builds a generator with a controllable time source. Test helper.
func NewWithNow(now func() time.Time) Generator {
	return &shaGenerator{now: now}
}

func (g *shaGenerator) Generate(curriculumID string) string {
	seed := fmt.Sprintf("%s:%d:%s", curriculumID, g.now().UnixNano(), uuid.New().String())
	sum := sha256.Sum256([]byte(seed))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:HashLength]
}
