package game

type Note struct {
	ID    uint64
	Index int // The spawn ordinal, 0 for the first note
	Lane  int // 1..Lanes

	// This is state
	Position float64 // Fraction of playfield height, 0 = top, 1 = bottom
	Hidden   bool    // Has the note crossed the judgement line
	Visual   Handle
}

type LineKind uint8

const (
	LineBar LineKind = iota
	LineBeat
)

func (k LineKind) String() string {
	switch k {
	case LineBar:
		return "bar"
	case LineBeat:
		return "beat"
	}
	return "unknown"
}

// TimingLine is a bar or beat line. It is never judged, only removed.
type TimingLine struct {
	ID       uint64
	Kind     LineKind
	Position float64
	Visual   Handle
}
