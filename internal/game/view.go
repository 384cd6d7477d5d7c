package game

// Handle identifies a visual within the View that created it.
type Handle uint64

type VisualKind uint8

const (
	VisualNote VisualKind = iota
	VisualBar
	VisualBeat
)

func visualForLine(k LineKind) VisualKind {
	if k == LineBar {
		return VisualBar
	}
	return VisualBeat
}

// View is the rendering side of the field. Positions are fractions of the
// playfield height.
type View interface {
	Create(kind VisualKind, lane int) Handle
	SetPosition(h Handle, position float64)
	SetVisible(h Handle, visible bool)
	Destroy(h Handle)
}

// CoverView receives the sudden (top) and hidden (bottom) cover heights in
// percent of the playfield.
type CoverView interface {
	SetCoverHeights(top, bottom float64)
}

// Layers are the two containers a Field draws into.
type Layers struct {
	Notes View
	Lines View
}
