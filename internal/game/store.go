package game

// Store holds the active notes and timing lines in spawn order.
type Store struct {
	nextID uint64
	notes  []*Note
	lines  []*TimingLine
}

func (s *Store) Notes() []*Note { return s.notes }

func (s *Store) Lines() []*TimingLine { return s.lines }

func (s *Store) Len() int { return len(s.notes) + len(s.lines) }

func (s *Store) AddNote(n *Note) {
	s.nextID++
	n.ID = s.nextID
	s.notes = append(s.notes, n)
}

func (s *Store) AddLine(l *TimingLine) {
	s.nextID++
	l.ID = s.nextID
	s.lines = append(s.lines, l)
}

// PruneNotes removes the notes for which out returns true, calling release
// once for each of them. Order of the remaining notes is kept.
func (s *Store) PruneNotes(out func(*Note) bool, release func(*Note)) int {
	var removed int
	s.notes, removed = compact(s.notes, out, release)
	return removed
}

func (s *Store) PruneLines(out func(*TimingLine) bool, release func(*TimingLine)) int {
	var removed int
	s.lines, removed = compact(s.lines, out, release)
	return removed
}

func compact[T any](items []T, out func(T) bool, release func(T)) ([]T, int) {
	kept := items[:0]
	for _, it := range items {
		if out(it) {
			release(it)
			continue
		}
		kept = append(kept, it)
	}
	removed := len(items) - len(kept)
	// Drop references held past the new length
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept, removed
}
