package control

import (
	"testing"

	"git.lost.host/meutraa/optsim/internal/game"
)

func TestNumericIgnoresMalformed(t *testing.T) {
	calls := 0
	n := NewNumeric("speed", "Speed", 0.05, 3, 0.05, 0.4, func(float64) { calls++ })
	for _, in := range []string{"", "abc", "1.2.3", "NaN", "inf", "0x"} {
		if n.Apply(in) {
			t.Errorf("Apply(%q) accepted", in)
		}
	}
	if calls != 0 || n.value != 0.4 {
		t.Fatalf("malformed input changed state: calls %d value %v", calls, n.value)
	}
	if !n.Apply(" 1.5 ") || n.value != 1.5 || calls != 1 {
		t.Fatalf("valid input rejected: value %v calls %d", n.value, calls)
	}
}

func TestNumericClampAndStep(t *testing.T) {
	var last float64
	n := NewNumeric("sudden", "Sudden", 0, 100, 5, 10, func(v float64) { last = v })
	n.Apply("250")
	if n.value != 100 || last != 100 {
		t.Fatalf("expected clamp to 100, got %v/%v", n.value, last)
	}
	n.Step(-3)
	if n.value != 85 {
		t.Fatalf("expected 85, got %v", n.value)
	}
	n.Step(-100)
	if n.value != 0 {
		t.Fatalf("expected 0, got %v", n.value)
	}

	speed := NewNumeric("speed", "Speed", 0.05, 3, 0.05, 0.4, nil)
	for i := 0; i < 7; i++ {
		speed.Step(1)
	}
	if speed.Value() != "0.75" {
		t.Fatalf("expected 0.75 after steps, got %v", speed.Value())
	}
}

func TestSelect(t *testing.T) {
	var applied []string
	s := NewSelect("direction", "Direction", []Option{
		{Value: "forward", Label: "Down"},
		{Value: "backward", Label: "Up"},
	}, "forward", func(v string) { applied = append(applied, v) })

	if s.Apply("sideways") {
		t.Fatal("unknown option accepted")
	}
	if !s.Apply("up") || s.Selected().Value != "backward" {
		t.Fatalf("label lookup failed: %+v", s.Selected())
	}
	s.Step(1)
	if s.Selected().Value != "forward" {
		t.Fatal("step did not wrap")
	}
	s.Step(-1)
	if s.Selected().Value != "backward" {
		t.Fatal("negative step did not wrap")
	}
	if len(applied) != 3 {
		t.Fatalf("expected 3 callbacks, got %v", applied)
	}
	s.SetValue("forward")
	if len(applied) != 3 || s.Value() != "Down" {
		t.Fatal("SetValue called back")
	}
}

func TestPanelForOptions(t *testing.T) {
	o, _ := game.NewOptions(game.DefaultSettings())
	p := ForOptions(o, true, nil)

	if !p.Apply(IDSpeed, "1.2") || o.Speed() != 1.2 {
		t.Fatalf("speed not applied: %v", o.Speed())
	}
	if p.Apply(IDSpeed, "fast") || o.Speed() != 1.2 {
		t.Fatal("malformed speed changed options")
	}
	if !p.Apply(IDDirection, "backward") || o.Direction() != game.Backward {
		t.Fatal("direction not applied")
	}
	if !p.Apply(IDSudden, "35") || o.Sudden() != 35 {
		t.Fatal("sudden not applied")
	}
	if !p.Apply(IDHidden, "20") || o.Hidden() != 20 {
		t.Fatal("hidden not applied")
	}
	if p.Apply("volume", "3") {
		t.Fatal("unknown control accepted")
	}
}

func TestSpeedControlMatchesOptions(t *testing.T) {
	for _, speed := range []float64{game.MinSpeed, 3.7, game.MaxSpeed} {
		o, err := game.NewOptions(game.Settings{Direction: game.Forward, Speed: speed})
		if nil != err {
			t.Fatal(err)
		}
		speedControl := ForOptions(o, true, nil).Get(IDSpeed).(*Numeric)
		if speedControl.value != o.Speed() {
			t.Fatalf("control shows %v, options speed %v", speedControl.value, o.Speed())
		}
		speedControl.Step(1)
		if speedControl.value != o.Speed() || o.Speed() < speed {
			t.Fatalf("step up from %v: control %v, options %v", speed, speedControl.value, o.Speed())
		}
	}
}

func TestPresetSync(t *testing.T) {
	o, _ := game.NewOptions(game.DefaultSettings())
	var chosen []string
	p := ForOptions(o, true, func(pr game.Preset) { chosen = append(chosen, pr.Name) })

	if p.Get(IDPreset).Value() != "Default" {
		t.Fatalf("preset selector starts on %q", p.Get(IDPreset).Value())
	}
	if !p.Apply(IDPreset, "sudden-hidden") {
		t.Fatal("preset rejected")
	}
	expected, _ := game.FindPreset("sudden-hidden")
	if o.Settings() != expected.Settings {
		t.Fatalf("options %+v, expected %+v", o.Settings(), expected.Settings)
	}
	if p.Get(IDSpeed).Value() != "0.8" || p.Get(IDSudden).Value() != "25" || p.Get(IDHidden).Value() != "20" {
		t.Fatal("controls not synced")
	}
	if p.Get(IDDirection).(*Select).Selected().Value != "forward" {
		t.Fatal("direction not synced")
	}
	if len(chosen) != 1 || chosen[0] != "sudden-hidden" {
		t.Fatalf("unexpected preset callbacks %v", chosen)
	}

	unsynced := ForOptions(o, false, nil)
	unsynced.Apply(IDPreset, "reverse")
	if o.Direction() != game.Backward {
		t.Fatal("preset not applied")
	}
	if unsynced.Get(IDSpeed).Value() != "0.8" {
		t.Fatal("controls synced without being asked to")
	}
}

func TestPanelMove(t *testing.T) {
	o, _ := game.NewOptions(game.DefaultSettings())
	p := ForOptions(o, true, nil)
	if p.Selected().ID() != IDSpeed {
		t.Fatal("unexpected first control")
	}
	p.Move(-1)
	if p.Selected().ID() != IDPreset {
		t.Fatalf("expected wrap to preset, got %s", p.Selected().ID())
	}
	p.Move(2)
	if p.Selected().ID() != IDDirection {
		t.Fatalf("expected direction, got %s", p.Selected().ID())
	}
}
