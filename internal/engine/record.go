package engine

// RecordStore is the persistence collaborator for the best record. Failures
// are tolerated: the engine keeps an in-memory best regardless and only
// surfaces store errors to whoever wired the store in.
type RecordStore interface {
	// Best returns the best score recorded so far, 0 if none.
	Best() (int, error)
	// Record saves a finished session's score.
	Record(score int) error
}

// MemoryRecord keeps the best score in memory. It is the default store and
// the fallback when persistent storage is unavailable.
type MemoryRecord struct {
	best int
}

func (m *MemoryRecord) Best() (int, error) {
	return m.best, nil
}

func (m *MemoryRecord) Record(score int) error {
	if score > m.best {
		m.best = score
	}
	return nil
}

var _ RecordStore = (*MemoryRecord)(nil)
