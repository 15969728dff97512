// Package observable provides a typed value slot that notifies subscribers on every write.
//
// A Slot is not safe for concurrent use. Reads, writes and subscriptions are expected
// to happen on the goroutine that owns the value.
package observable

type Slot[T any] struct {
	value       T
	nextID      uint64
	subscribers map[uint64]func(T)
	order       []uint64
}

func NewSlot[T any](initial T) *Slot[T] {
	return &Slot[T]{
		value:       initial,
		subscribers: make(map[uint64]func(T)),
	}
}

func (s *Slot[T]) Get() T {
	return s.value
}

// Set stores value and synchronously calls every current subscriber in subscription order.
func (s *Slot[T]) Set(value T) {
	s.value = value

	// Copy so a subscriber may unsubscribe itself (or others) while being notified.
	ids := append([]uint64(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.subscribers[id]; ok {
			fn(value)
		}
	}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (s *Slot[T]) Subscribe(fn func(T)) func() {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.order = append(s.order, id)

	return func() {
		if _, ok := s.subscribers[id]; !ok {
			return
		}
		delete(s.subscribers, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
