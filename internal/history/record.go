package history

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Simplici0/stroycalc/internal/materials"
)

// Record is one saved calculation. Records are never mutated after Append.
type Record struct {
	ID        string             `json:"id"`
	Category  materials.Category `json:"category"`
	Timestamp time.Time          `json:"timestamp"`
	Input     map[string]any     `json:"input"`
	Result    map[string]any     `json:"result"`
}

// idSource hands out ULIDs that sort by creation time, including ids minted
// within the same millisecond.
type idSource struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newIDSource() *idSource {
	return &idSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (s *idSource) next(t time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
