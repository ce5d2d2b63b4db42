package services

import (
	"sync"

	"wemovies/libs"
	"wemovies/models"
)

// CartStore holds one session's selection. Every view of the session reads
// and mutates the same instance. Mutations never fail; unknown ids are no-ops.
type CartStore struct {
	mu      sync.Mutex
	lines   []models.CartLine
	version uint64

	subMu  sync.Mutex
	subs   map[int]chan models.CartSnapshot
	nextID int
}

func NewCartStore() *CartStore {
	return &CartStore{subs: make(map[int]chan models.CartSnapshot)}
}

func (s *CartStore) AddItem(item models.Item) {
	s.mutate("add", func() {
		if i := s.indexOf(item.ID); i >= 0 {
			s.lines[i].Quantity++
			return
		}
		s.lines = append(s.lines, models.CartLine{Item: item, Quantity: 1})
	})
}

// IncreaseQuantity re-adds the line's own item.
func (s *CartStore) IncreaseQuantity(id int64) {
	s.mutate("increase", func() {
		if i := s.indexOf(id); i >= 0 {
			s.lines[i].Quantity++
		}
	})
}

func (s *CartStore) DecreaseQuantity(id int64) {
	s.mutate("decrease", func() {
		i := s.indexOf(id)
		if i < 0 {
			return
		}
		if s.lines[i].Quantity > 1 {
			s.lines[i].Quantity--
			return
		}
		s.removeAt(i)
	})
}

func (s *CartStore) RemoveItem(id int64) {
	s.mutate("remove", func() {
		if i := s.indexOf(id); i >= 0 {
			s.removeAt(i)
		}
	})
}

func (s *CartStore) Clear() {
	s.mutate("clear", func() {
		s.lines = nil
	})
}

func (s *CartStore) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CartStore) QuantityOf(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

// Subscribe returns a channel that receives the cart snapshot after every
// mutation. The channel buffers only the latest snapshot, so a slow reader
// skips intermediate versions instead of stalling writers. Call the returned
// func to unsubscribe; it closes the channel.
func (s *CartStore) Subscribe() (<-chan models.CartSnapshot, func()) {
	ch := make(chan models.CartSnapshot, 1)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *CartStore) mutate(op string, fn func()) {
	s.mu.Lock()
	fn()
	s.version++
	snap := s.snapshotLocked()
	// Publishing under s.mu keeps subscribers' view in version order.
	s.publish(snap)
	s.mu.Unlock()

	libs.ObserveCartMutation(op)
}

func (s *CartStore) publish(snap models.CartSnapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// Drop the stale snapshot and retry once.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *CartStore) snapshotLocked() models.CartSnapshot {
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return models.CartSnapshot{Version: s.version, Lines: lines}
}

func (s *CartStore) indexOf(id int64) int {
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			return i
		}
	}
	return -1
}

func (s *CartStore) removeAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}
