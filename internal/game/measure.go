package game

import (
	"time"

	"github.com/pkg/errors"
)

// Lanes is the number of tracks notes travel along, numbered 1..Lanes
const Lanes = 5

var DefaultPattern = []int{1, 2, 3, 4, 5, 4, 3, 2}

// Grid is the musical grid that notes and timing lines are spawned on.
type Grid struct {
	Measure     time.Duration // The length of one measure
	Subdivision int           // Notes per measure, 8 = 1/8 notes
	Beats       int           // Beat lines per measure
	Pattern     []int         // Lane of the Nth note, repeating
}

func DefaultGrid() Grid {
	return Grid{
		Measure:     4 * time.Second,
		Subdivision: 8,
		Beats:       4,
		Pattern:     DefaultPattern,
	}
}

func (g Grid) NoteInterval() time.Duration {
	return g.Measure / time.Duration(g.Subdivision)
}

func (g Grid) BeatInterval() time.Duration {
	return g.Measure / time.Duration(g.Beats)
}

// Lane returns the lane for the note with the given 0-based spawn index.
func (g Grid) Lane(index int) int {
	return g.Pattern[index%len(g.Pattern)]
}

func (g Grid) Validate() error {
	if g.Measure <= 0 {
		return errors.New("measure must be positive")
	}
	if g.Subdivision <= 0 || g.Beats <= 0 {
		return errors.New("subdivision and beats must be positive")
	}
	if g.NoteInterval() <= 0 || g.BeatInterval() <= 0 {
		return errors.Errorf("measure %v is too short for its subdivisions", g.Measure)
	}
	if len(g.Pattern) == 0 {
		return errors.New("lane pattern is empty")
	}
	for _, lane := range g.Pattern {
		if lane < 1 || lane > Lanes {
			return errors.Errorf("lane %d outside 1..%d", lane, Lanes)
		}
	}
	return nil
}
