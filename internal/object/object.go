// Package object defines the simulation's entity records and the ordered
// stores that hold them.
package object

// Updatable is implemented by entity records that advance one tick at a time.
type Updatable[T any] interface {
	*T
	// Update advances the entity by one tick. Returns true if the entity should be removed.
	Update() (remove bool)
}

// Store is an ordered collection of entity records. Creation appends, removal
// filters in place, and iteration always follows insertion order.
type Store[T any] struct {
	items []T
}

// Append adds records to the end of the store.
func (s *Store[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// Items returns the live records. The slice is only valid until the next mutation.
func (s *Store[T]) Items() []T {
	return s.items
}

// At returns a pointer to the i-th record for in-place mutation.
func (s *Store[T]) At(i int) *T {
	return &s.items[i]
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Filter keeps only the records for which keep returns true, preserving order.
func (s *Store[T]) Filter(keep func(*T) bool) {
	kept := s.items[:0] // reuse backing array
	for i := range s.items {
		if keep(&s.items[i]) {
			kept = append(kept, s.items[i])
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

// Reset empties the store.
func (s *Store[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// Clone returns an independent copy of the records.
func (s *Store[T]) Clone() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Step updates every record once and removes those that ask to be removed.
func Step[T any, P Updatable[T]](s *Store[T]) {
	s.Filter(func(item *T) bool {
		return !P(item).Update()
	})
}

// Counter hands out monotonically increasing ids for one entity category.
// Ids are never reused for the lifetime of the counter.
type Counter struct {
	next uint64
}

// Next returns a fresh id.
func (c *Counter) Next() uint64 {
	id := c.next
	c.next++
	return id
}

// IDs groups the per-category counters owned by one simulation.
type IDs struct {
	Particles  Counter
	Bullets    Counter
	Enemies    Counter
	Explosions Counter
	PowerUps   Counter
}
