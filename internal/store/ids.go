package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for inbox and notification entries: a
// cryptographically random UUID when entropy is available, otherwise a
// timestamp+random fallback. Uniqueness is best-effort, which is acceptable
// because entries are only looked up by id at human scale.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d-%06d", time.Now().UnixNano(), rand.Intn(1_000_000))
}
