package core

// KeyValueStore is the small persistence contract games rely on: integer
// values under string keys, read and written synchronously.
type KeyValueStore interface {
	// GetInt returns the value stored under key and whether it was present.
	GetInt(key string) (int, bool, error)

	// SetInt stores value under key, replacing any previous value.
	SetInt(key string, value int) error
}
