package control

import (
	"git.lost.host/meutraa/optsim/internal/game"
)

const (
	IDSpeed     = "speed"
	IDDirection = "direction"
	IDSudden    = "sudden"
	IDHidden    = "hidden"
	IDPreset    = "preset"
)

// Panel is an ordered set of controls with a selection cursor.
type Panel struct {
	controls []Control
	selected int
}

func NewPanel(controls ...Control) *Panel {
	return &Panel{controls: controls}
}

func (p *Panel) Controls() []Control { return p.controls }

func (p *Panel) Get(id string) Control {
	for _, c := range p.controls {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func (p *Panel) Selected() Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[p.selected]
}

func (p *Panel) SelectedIndex() int { return p.selected }

// Move shifts the selection by n, wrapping around.
func (p *Panel) Move(n int) {
	count := len(p.controls)
	if count == 0 {
		return
	}
	p.selected = ((p.selected+n)%count + count) % count
}

// Apply sets control id from text. Unknown ids and malformed input are
// ignored.
func (p *Panel) Apply(id, input string) bool {
	c := p.Get(id)
	if nil == c {
		return false
	}
	return c.Apply(input)
}

// Sync pushes s into the controls without triggering their callbacks.
func (p *Panel) Sync(s game.Settings) {
	for _, c := range p.controls {
		switch c.ID() {
		case IDSpeed:
			c.(*Numeric).SetValue(s.Speed)
		case IDDirection:
			c.(*Select).SetValue(s.Direction.String())
		case IDSudden:
			c.(*Numeric).SetValue(s.Sudden)
		case IDHidden:
			c.(*Numeric).SetValue(s.Hidden)
		}
	}
}

// ForOptions builds the standard panel: speed, direction, sudden, hidden and
// the preset selector. When sync is set, choosing a preset pushes its values
// back into the other controls.
func ForOptions(o *game.Options, sync bool, onPreset func(game.Preset)) *Panel {
	s := o.Settings()
	p := &Panel{}

	speed := NewNumeric(IDSpeed, "Speed", game.MinSpeed, game.MaxSpeed, game.SpeedStep, s.Speed, func(v float64) {
		_ = o.SetSpeed(v)
	})
	direction := NewSelect(IDDirection, "Direction", []Option{
		{Value: game.Forward.String(), Label: "Down"},
		{Value: game.Backward.String(), Label: "Up"},
	}, s.Direction.String(), func(v string) {
		d, err := game.ParseDirection(v)
		if nil == err {
			o.SetDirection(d)
		}
	})
	sudden := NewNumeric(IDSudden, "Sudden", 0, 100, 5, s.Sudden, o.SetSudden)
	hidden := NewNumeric(IDHidden, "Hidden", 0, 100, 5, s.Hidden, o.SetHidden)

	presets := make([]Option, len(game.Presets))
	for i, pr := range game.Presets {
		presets[i] = Option{Value: pr.Name, Label: pr.Label}
	}
	preset := NewSelect(IDPreset, "Preset", presets, "", func(name string) {
		pr, ok := game.FindPreset(name)
		if !ok {
			return
		}
		if err := o.Apply(pr.Settings); nil != err {
			return
		}
		if sync {
			p.Sync(o.Settings())
		}
		if nil != onPreset {
			onPreset(pr)
		}
	})
	// The selector starts on whichever preset matches the initial settings
	for _, pr := range game.Presets {
		if pr.Settings == s {
			preset.SetValue(pr.Name)
		}
	}

	p.controls = []Control{speed, direction, sudden, hidden, preset}
	return p
}
