package store

// seq is an ordered sequence of records of one kind. It is not safe for
// concurrent use; Store guards it.
type seq[T any] struct {
	items []*T
}

func (s *seq[T]) len() int {
	return len(s.items)
}

// all returns a copy of the sequence so callers can iterate without holding a lock.
func (s *seq[T]) all() []*T {
	out := make([]*T, len(s.items))
	copy(out, s.items)
	return out
}

// find returns the first record matching pred, or nil.
func (s *seq[T]) find(pred func(*T) bool) *T {
	for _, item := range s.items {
		if pred(item) {
			return item
		}
	}
	return nil
}

func (s *seq[T]) push(item *T) *T {
	s.items = append(s.items, item)
	return item
}

// removeWhere drops every record matching pred, keeping survivors in order,
// and returns how many were removed.
func (s *seq[T]) removeWhere(pred func(*T) bool) int {
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	// Clear the tail so removed records can be collected.
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}
