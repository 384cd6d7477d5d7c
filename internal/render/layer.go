package render

import (
	"sort"

	"git.lost.host/meutraa/optsim/internal/game"
)

type visual struct {
	kind     game.VisualKind
	lane     int
	position float64
	visible  bool
}

// layer is a container of visuals, the terminal counterpart of a DOM layer.
type layer struct {
	next    game.Handle
	visuals map[game.Handle]*visual
}

func newLayer() *layer {
	return &layer{visuals: map[game.Handle]*visual{}}
}

func (l *layer) Create(kind game.VisualKind, lane int) game.Handle {
	l.next++
	l.visuals[l.next] = &visual{kind: kind, lane: lane, visible: true}
	return l.next
}

func (l *layer) SetPosition(h game.Handle, position float64) {
	if v, ok := l.visuals[h]; ok {
		v.position = position
	}
}

func (l *layer) SetVisible(h game.Handle, visible bool) {
	if v, ok := l.visuals[h]; ok {
		v.visible = visible
	}
}

func (l *layer) Destroy(h game.Handle) {
	delete(l.visuals, h)
}

func (l *layer) Len() int { return len(l.visuals) }

// ordered returns the visuals in creation order so later ones draw on top.
func (l *layer) ordered() []*visual {
	handles := make([]game.Handle, 0, len(l.visuals))
	for h := range l.visuals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	vs := make([]*visual, len(handles))
	for i, h := range handles {
		vs[i] = l.visuals[h]
	}
	return vs
}
