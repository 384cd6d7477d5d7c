package game

import (
	"time"

	"github.com/pkg/errors"
)

type SpawnKind uint8

// Ordered by priority when due times are equal
const (
	SpawnBar SpawnKind = iota
	SpawnBeat
	SpawnNote
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnBar:
		return "bar"
	case SpawnBeat:
		return "beat"
	case SpawnNote:
		return "note"
	}
	return "unknown"
}

type Spawn struct {
	Kind  SpawnKind
	Due   time.Duration // Song time the entity was scheduled for
	Index int           // Note spawn ordinal, only for notes
	Lane  int           // Only for notes
}

// Cursor is the schedule state. Every due time only moves forward, by its
// own fixed interval.
type Cursor struct {
	NextNote  time.Duration
	NextBar   time.Duration
	NextBeat  time.Duration
	NoteIndex int
}

type Scheduler struct {
	grid   Grid
	cursor Cursor
}

// NewScheduler starts the grid at song time zero. The first bar line and the
// first note are due immediately, the first beat line one beat in. The grid
// must validate, otherwise Advance could never catch up.
func NewScheduler(g Grid) (*Scheduler, error) {
	if err := g.Validate(); nil != err {
		return nil, errors.Wrap(err, "invalid grid")
	}
	return &Scheduler{
		grid: g,
		cursor: Cursor{
			NextNote: 0,
			NextBar:  0,
			NextBeat: g.BeatInterval(),
		},
	}, nil
}

func (s *Scheduler) Cursor() Cursor { return s.cursor }

func (s *Scheduler) Grid() Grid { return s.grid }

// Advance appends every spawn due at or before now to dst in due time order.
// A long gap between calls produces the whole backlog at once.
func (s *Scheduler) Advance(now time.Duration, dst []Spawn) []Spawn {
	for {
		kind, due := s.earliest()
		if due > now {
			return dst
		}

		sp := Spawn{Kind: kind, Due: due}
		switch kind {
		case SpawnBar:
			s.cursor.NextBar += s.grid.Measure
		case SpawnBeat:
			s.cursor.NextBeat += s.grid.BeatInterval()
		case SpawnNote:
			sp.Index = s.cursor.NoteIndex
			sp.Lane = s.grid.Lane(s.cursor.NoteIndex)
			s.cursor.NoteIndex++
			s.cursor.NextNote += s.grid.NoteInterval()
		}
		dst = append(dst, sp)
	}
}

func (s *Scheduler) earliest() (SpawnKind, time.Duration) {
	kind, due := SpawnBar, s.cursor.NextBar
	if s.cursor.NextBeat < due {
		kind, due = SpawnBeat, s.cursor.NextBeat
	}
	if s.cursor.NextNote < due {
		kind, due = SpawnNote, s.cursor.NextNote
	}
	return kind, due
}
