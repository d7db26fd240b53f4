package icon

import (
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Icon is one loaded icon asset. Data is shared between IDs whose assets
// hash identically, so callers must treat it as read-only.
type Icon struct {
	ID   uint32
	Hash [blake2b.Size256]byte
	Data []byte
}

// Loader fetches the raw bytes of an icon asset. A nil or error result
// means the icon does not exist.
type Loader func(id uint32) ([]byte, error)

// Store caches loaded icons and dedups identical assets by content hash.
// Safe for concurrent use; set builds look icons up from many goroutines.
type Store struct {
	mu     sync.RWMutex
	loader Loader
	byID   map[uint32]*Icon
	byHash map[[blake2b.Size256]byte]*Icon
	misses map[uint32]struct{}
}

func NewStore(loader Loader) *Store {
	return &Store{
		loader: loader,
		byID:   make(map[uint32]*Icon),
		byHash: make(map[[blake2b.Size256]byte]*Icon),
		misses: make(map[uint32]struct{}),
	}
}

// Icon returns the icon for an ID, loading it on first request.
// Missing icons are remembered so absent IDs stay cheap.
func (s *Store) Icon(id uint32) (*Icon, bool) {
	s.mu.RLock()
	ic, hit := s.byID[id]
	_, missed := s.misses[id]
	s.mu.RUnlock()
	if hit {
		return ic, true
	}
	if missed || s.loader == nil {
		return nil, false
	}

	raw, err := s.loader(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ic, hit := s.byID[id]; hit {
		// Another goroutine loaded it while we were outside the lock.
		return ic, true
	}
	if err != nil || raw == nil {
		s.misses[id] = struct{}{}
		return nil, false
	}
	hash := blake2b.Sum256(raw)
	if shared, ok := s.byHash[hash]; ok {
		ic := &Icon{ID: id, Hash: hash, Data: shared.Data}
		s.byID[id] = ic
		return ic, true
	}
	ic = &Icon{ID: id, Hash: hash, Data: raw}
	s.byID[id] = ic
	s.byHash[hash] = ic
	return ic, true
}

// Len returns the number of cached icons.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
