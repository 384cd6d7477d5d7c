package game

import "testing"

type fakeVisual struct {
	kind      VisualKind
	lane      int
	position  float64
	visible   bool
	destroyed int
}

// fakeView records every call made by the field.
type fakeView struct {
	t       *testing.T
	next    Handle
	visuals map[Handle]*fakeVisual
	created []Handle
	hides   int
}

func newFakeView(t *testing.T) *fakeView {
	return &fakeView{t: t, visuals: map[Handle]*fakeVisual{}}
}

func (v *fakeView) Create(kind VisualKind, lane int) Handle {
	v.next++
	v.visuals[v.next] = &fakeVisual{kind: kind, lane: lane, visible: true}
	v.created = append(v.created, v.next)
	return v.next
}

func (v *fakeView) get(h Handle) *fakeVisual {
	vis, ok := v.visuals[h]
	if !ok {
		v.t.Fatalf("unknown handle %d", h)
	}
	if vis.destroyed > 0 {
		v.t.Fatalf("handle %d used after destroy", h)
	}
	return vis
}

func (v *fakeView) SetPosition(h Handle, position float64) {
	v.get(h).position = position
}

func (v *fakeView) SetVisible(h Handle, visible bool) {
	if !visible {
		v.hides++
	}
	v.get(h).visible = visible
}

func (v *fakeView) Destroy(h Handle) {
	vis, ok := v.visuals[h]
	if !ok {
		v.t.Fatalf("destroy of unknown handle %d", h)
	}
	vis.destroyed++
	if vis.destroyed > 1 {
		v.t.Fatalf("handle %d destroyed %d times", h, vis.destroyed)
	}
}

func (v *fakeView) live() int {
	count := 0
	for _, vis := range v.visuals {
		if vis.destroyed == 0 {
			count++
		}
	}
	return count
}

type fakeCovers struct {
	calls       int
	top, bottom float64
}

func (c *fakeCovers) SetCoverHeights(top, bottom float64) {
	c.calls++
	c.top, c.bottom = top, bottom
}
