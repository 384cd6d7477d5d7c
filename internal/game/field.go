package game

import (
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultJudgeLine = 0.8

	// Entities spawn this far outside the playfield and are removed once
	// they are PruneMargin past the opposite edge.
	SpawnMargin = 0.1
	PruneMargin = 0.2
)

var ErrMissingLayer = errors.New("note or line layer not found")

type Stats struct {
	Notes   uint64 // Notes spawned
	Bars    uint64
	Beats   uint64
	Judged  uint64 // Notes hidden at the judgement line
	Removed uint64 // Notes and lines pruned
}

// Field is the frame updater. Tick must be called from a single goroutine
// with non-decreasing timestamps.
type Field struct {
	options *Options
	sched   *Scheduler
	store   Store
	layers  Layers
	judge   float64

	started  bool
	last     time.Time
	songTime time.Duration
	spawns   []Spawn
	stats    Stats
}

// NewField creates the field and spawns everything due at song time zero,
// which includes the first bar line.
func NewField(o *Options, g Grid, judge float64, layers Layers) (*Field, error) {
	if nil == layers.Notes || nil == layers.Lines {
		return nil, ErrMissingLayer
	}
	if nil == o {
		return nil, errors.New("options are required")
	}
	sched, err := NewScheduler(g)
	if nil != err {
		return nil, err
	}
	if judge < 0 || judge > 1 || judge != judge {
		judge = DefaultJudgeLine
	}

	f := &Field{
		options: o,
		sched:   sched,
		layers:  layers,
		judge:   judge,
	}
	f.spawn(f.options.Direction(), f.options.Velocity())
	return f, nil
}

func (f *Field) SongTime() time.Duration { return f.songTime }

func (f *Field) JudgeLine() float64 { return f.judge }

func (f *Field) Cursor() Cursor { return f.sched.Cursor() }

func (f *Field) Store() *Store { return &f.store }

func (f *Field) Stats() Stats { return f.stats }

// Tick advances the field to now. The first call only records the timestamp.
func (f *Field) Tick(now time.Time) {
	var dt time.Duration
	if f.started {
		dt = now.Sub(f.last)
		if dt < 0 {
			dt = 0
		}
	}
	f.started = true
	f.last = now
	f.songTime += dt

	// Options may have changed since the last frame
	dir := f.options.Direction()
	velocity := f.options.Velocity()
	step := velocity * dt.Seconds()

	for _, n := range f.store.Notes() {
		f.moveNote(n, n.Position+step, dir)
	}
	for _, l := range f.store.Lines() {
		l.Position += step
		f.layers.Lines.SetPosition(l.Visual, l.Position)
	}

	f.spawn(dir, velocity)
	f.prune(dir)
}

// spawn creates every entity due by the current song time. Each starts at the
// spawn edge and is moved by the time elapsed since it was due.
func (f *Field) spawn(dir Direction, velocity float64) {
	f.spawns = f.sched.Advance(f.songTime, f.spawns[:0])
	edge := SpawnPosition(dir)
	for _, sp := range f.spawns {
		pos := edge + velocity*(f.songTime-sp.Due).Seconds()
		switch sp.Kind {
		case SpawnNote:
			n := &Note{
				Index:    sp.Index,
				Lane:     sp.Lane,
				Position: edge,
				Visual:   f.layers.Notes.Create(VisualNote, sp.Lane),
			}
			f.store.AddNote(n)
			f.stats.Notes++
			f.moveNote(n, pos, dir)
		case SpawnBar, SpawnBeat:
			kind := LineBar
			if sp.Kind == SpawnBeat {
				kind = LineBeat
				f.stats.Beats++
			} else {
				f.stats.Bars++
			}
			l := &TimingLine{
				Kind:     kind,
				Position: pos,
				Visual:   f.layers.Lines.Create(visualForLine(kind), 0),
			}
			f.store.AddLine(l)
			f.layers.Lines.SetPosition(l.Visual, l.Position)
		}
	}
}

// moveNote places n and hides it once it is at or past the judgement line for
// the current direction. A direction flip can therefore hide notes that were
// short of the line.
func (f *Field) moveNote(n *Note, pos float64, dir Direction) {
	n.Position = pos
	f.layers.Notes.SetPosition(n.Visual, pos)
	if !n.Hidden && Reached(dir, pos, f.judge) {
		n.Hidden = true
		f.stats.Judged++
		f.layers.Notes.SetVisible(n.Visual, false)
	}
}

func (f *Field) prune(dir Direction) {
	f.stats.Removed += uint64(f.store.PruneNotes(
		func(n *Note) bool { return Exited(dir, n.Position) },
		func(n *Note) { f.layers.Notes.Destroy(n.Visual) },
	))
	f.stats.Removed += uint64(f.store.PruneLines(
		func(l *TimingLine) bool { return Exited(dir, l.Position) },
		func(l *TimingLine) { f.layers.Lines.Destroy(l.Visual) },
	))
}

// SpawnPosition is just outside the leading edge for the direction.
func SpawnPosition(dir Direction) float64 {
	if dir == Backward {
		return 1 + SpawnMargin
	}
	return -SpawnMargin
}

// Exited reports whether pos is past the trailing edge for the direction.
func Exited(dir Direction, pos float64) bool {
	if dir == Backward {
		return pos < -PruneMargin
	}
	return pos > 1+PruneMargin
}

// Reached reports whether pos is at or beyond the judgement line in the
// direction of travel.
func Reached(dir Direction, pos, judge float64) bool {
	if dir == Backward {
		return pos <= judge
	}
	return pos >= judge
}
