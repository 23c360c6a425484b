package session

// Storage persists session state across process restarts. Implementations
// are simple string-keyed byte stores; Get returns a nil value and no error
// when the key is absent.
type Storage interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}
