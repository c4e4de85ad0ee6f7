package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/startpage-snake/internal/core"
)

// highScoreKey is the key suffix under which the best score is persisted.
const highScoreKey = "snakeHighScore"

// ErrHighScoreUnavailable is returned when the persisted high score cannot
// be read.
var ErrHighScoreUnavailable = errors.New("snake: high score unavailable")

// HighScoreKey returns the persisted key for a namespace.
func HighScoreKey(namespace string) string {
	if namespace == "" {
		return highScoreKey
	}
	return namespace + "." + highScoreKey
}

// HighScoreStore keeps the best score of a namespace in memory and mirrors
// every improvement to the key-value store. A nil store keeps the value in
// memory only.
type HighScoreStore struct {
	kv   core.KeyValueStore
	key  string
	best int
}

// NewHighScoreStore reads the persisted high score of namespace.
func NewHighScoreStore(kv core.KeyValueStore, namespace string) (*HighScoreStore, error) {
	h := &HighScoreStore{kv: kv, key: HighScoreKey(namespace)}
	if kv == nil {
		return h, nil
	}

	v, ok, err := kv.GetInt(h.key)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrHighScoreUnavailable, err)
	}
	if ok && v > 0 {
		h.best = v
	}
	return h, nil
}

// Best returns the highest score seen so far.
func (h *HighScoreStore) Best() int {
	return h.best
}

// Key returns the persisted key.
func (h *HighScoreStore) Key() string {
	return h.key
}

// Record raises the high score to score when it is higher and persists it.
// The in-memory value is updated even when the write fails.
func (h *HighScoreStore) Record(score int) (bool, error) {
	if score <= h.best {
		return false, nil
	}
	h.best = score
	if h.kv == nil {
		return true, nil
	}
	if err := h.kv.SetInt(h.key, score); err != nil {
		return true, fmt.Errorf("snake: cannot persist high score: %w", err)
	}
	return true, nil
}
