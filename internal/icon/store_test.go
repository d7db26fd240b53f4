package icon

import (
	"errors"
	"sync"
	"testing"
)

func TestStoreLoadAndCache(t *testing.T) {
	calls := 0
	s := NewStore(func(id uint32) ([]byte, error) {
		calls++
		if id == 404 {
			return nil, errors.New("not found")
		}
		return []byte{byte(id)}, nil
	})

	ic, ok := s.Icon(7)
	if !ok || ic.ID != 7 || len(ic.Data) != 1 {
		t.Fatalf("expected icon 7, got %+v (ok=%v)", ic, ok)
	}
	if _, ok := s.Icon(7); !ok {
		t.Fatal("cached icon must hit")
	}
	if calls != 1 {
		t.Fatalf("expected 1 loader call, got %d", calls)
	}

	if _, ok := s.Icon(404); ok {
		t.Fatal("missing icon must miss")
	}
	if _, ok := s.Icon(404); ok {
		t.Fatal("remembered miss must stay a miss")
	}
	if calls != 2 {
		t.Fatalf("miss must be loaded once, got %d calls", calls)
	}
}

func TestStoreDedupsIdenticalAssets(t *testing.T) {
	blob := []byte("same pixels")
	s := NewStore(func(id uint32) ([]byte, error) {
		out := make([]byte, len(blob))
		copy(out, blob)
		return out, nil
	})

	a, _ := s.Icon(1)
	b, _ := s.Icon(2)
	if a.Hash != b.Hash {
		t.Fatal("identical assets must hash equal")
	}
	if &a.Data[0] != &b.Data[0] {
		t.Fatal("identical assets must share backing data")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(func(id uint32) ([]byte, error) {
		return []byte{byte(id), byte(id >> 8)}, nil
	})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := uint32(0); id < 64; id++ {
				if _, ok := s.Icon(id); !ok {
					t.Error("expected icon")
					return
				}
			}
		}()
	}
	wg.Wait()
	if s.Len() != 64 {
		t.Fatalf("expected 64 cached icons, got %d", s.Len())
	}
}

func TestStoreWithoutLoader(t *testing.T) {
	s := NewStore(nil)
	if _, ok := s.Icon(1); ok {
		t.Fatal("store without loader must always miss")
	}
}
