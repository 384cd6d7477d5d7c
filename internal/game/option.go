package game

import (
	"strings"

	"github.com/pkg/errors"
)

type Direction int8

const (
	Forward  Direction = 1  // top to bottom
	Backward Direction = -1 // bottom to top
)

func (d Direction) Sign() float64 {
	if d == Backward {
		return -1
	}
	return 1
}

func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "down":
		return Forward, nil
	case "backward", "up", "reverse":
		return Backward, nil
	}
	return Forward, errors.Errorf("unknown direction %q", s)
}

// Scroll speed limits in playfield heights per second, shared by the flags
// and the speed control.
const (
	MinSpeed  = 0.05
	MaxSpeed  = 5.0
	SpeedStep = 0.05
)

var ErrInvalidSpeed = errors.Errorf("speed must be between %v and %v", MinSpeed, MaxSpeed)

// Settings are the four playback options.
type Settings struct {
	Direction Direction
	Speed     float64 // Playfield heights per second
	Sudden    float64 // Top cover, percent
	Hidden    float64 // Bottom cover, percent
}

func DefaultSettings() Settings {
	return Settings{Direction: Forward, Speed: 0.4}
}

// Options owns the current Settings. It is read by the Field every tick and
// written by the option controls.
type Options struct {
	settings Settings
	covers   CoverView
}

func NewOptions(s Settings) (*Options, error) {
	o := &Options{}
	if err := o.Apply(s); nil != err {
		return nil, err
	}
	return o, nil
}

func (o *Options) Settings() Settings { return o.settings }

func (o *Options) Direction() Direction { return o.settings.Direction }

func (o *Options) Speed() float64 { return o.settings.Speed }

func (o *Options) Sudden() float64 { return o.settings.Sudden }

func (o *Options) Hidden() float64 { return o.settings.Hidden }

// Velocity is the signed speed, positive when scrolling down.
func (o *Options) Velocity() float64 {
	return o.settings.Speed * o.settings.Direction.Sign()
}

func (o *Options) SetDirection(d Direction) {
	if d != Backward {
		d = Forward
	}
	o.settings.Direction = d
}

func (o *Options) SetSpeed(speed float64) error {
	if !ValidSpeed(speed) {
		return ErrInvalidSpeed
	}
	o.settings.Speed = speed
	return nil
}

func (o *Options) SetSudden(percent float64) {
	o.settings.Sudden = clampPercent(percent)
	o.pushCovers()
}

func (o *Options) SetHidden(percent float64) {
	o.settings.Hidden = clampPercent(percent)
	o.pushCovers()
}

// Apply overwrites all four settings at once. Nothing changes if the speed is
// invalid.
func (o *Options) Apply(s Settings) error {
	if !ValidSpeed(s.Speed) {
		return ErrInvalidSpeed
	}
	if s.Direction != Backward {
		s.Direction = Forward
	}
	s.Sudden = clampPercent(s.Sudden)
	s.Hidden = clampPercent(s.Hidden)
	o.settings = s
	o.pushCovers()
	return nil
}

// BindCovers attaches the view that draws the cover regions and pushes the
// current heights to it.
func (o *Options) BindCovers(v CoverView) {
	o.covers = v
	o.pushCovers()
}

func (o *Options) pushCovers() {
	if nil != o.covers {
		o.covers.SetCoverHeights(o.settings.Sudden, o.settings.Hidden)
	}
}

// ValidSpeed reports whether speed is within MinSpeed..MaxSpeed. NaN fails
// both comparisons.
func ValidSpeed(speed float64) bool {
	return speed >= MinSpeed && speed <= MaxSpeed
}

func clampPercent(p float64) float64 {
	switch {
	case p != p, p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
