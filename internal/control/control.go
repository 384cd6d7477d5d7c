package control

import (
	"math"
	"strconv"
	"strings"
)

// Control is one adjustable option.
type Control interface {
	ID() string
	Label() string
	// Value is the current value as displayed
	Value() string
	// Apply sets the value from text. Input that does not parse is ignored
	// and false returned.
	Apply(input string) bool
	// Step moves the value by n steps, or n options for a selection.
	Step(n int)
}

type Numeric struct {
	id, label string
	Min       float64
	Max       float64
	StepSize  float64
	Default   float64
	OnApply   func(value float64)

	value float64
}

func NewNumeric(id, label string, min, max, step, def float64, onApply func(float64)) *Numeric {
	n := &Numeric{
		id:       id,
		label:    label,
		Min:      min,
		Max:      max,
		StepSize: step,
		Default:  def,
		OnApply:  onApply,
	}
	n.value = n.clamp(def)
	return n
}

func (n *Numeric) ID() string { return n.id }

func (n *Numeric) Label() string { return n.label }

func (n *Numeric) Value() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n *Numeric) Apply(input string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if nil != err || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	n.set(v)
	return true
}

func (n *Numeric) Step(steps int) {
	v := n.value + float64(steps)*n.StepSize
	// Keep values on the step grid despite float accumulation
	if n.StepSize > 0 {
		v = math.Round(v/n.StepSize) * n.StepSize
		v = math.Round(v*1e9) / 1e9
	}
	n.set(v)
}

// SetValue updates the displayed value without calling OnApply.
func (n *Numeric) SetValue(v float64) {
	n.value = n.clamp(v)
}

func (n *Numeric) set(v float64) {
	n.value = n.clamp(v)
	if nil != n.OnApply {
		n.OnApply(n.value)
	}
}

func (n *Numeric) clamp(v float64) float64 {
	return math.Max(n.Min, math.Min(n.Max, v))
}

type Option struct {
	Value string
	Label string
}

type Select struct {
	id, label string
	Options   []Option
	Default   string
	OnApply   func(value string)

	index int
}

func NewSelect(id, label string, options []Option, def string, onApply func(string)) *Select {
	s := &Select{
		id:      id,
		label:   label,
		Options: options,
		Default: def,
		OnApply: onApply,
	}
	if i := s.find(def); i >= 0 {
		s.index = i
	}
	return s
}

func (s *Select) ID() string { return s.id }

func (s *Select) Label() string { return s.label }

func (s *Select) Selected() Option {
	if len(s.Options) == 0 {
		return Option{}
	}
	return s.Options[s.index]
}

func (s *Select) Value() string { return s.Selected().Label }

func (s *Select) Apply(value string) bool {
	i := s.find(strings.TrimSpace(value))
	if i < 0 {
		return false
	}
	s.set(i)
	return true
}

func (s *Select) Step(n int) {
	count := len(s.Options)
	if count == 0 {
		return
	}
	s.set(((s.index+n)%count + count) % count)
}

// SetValue selects value without calling OnApply.
func (s *Select) SetValue(value string) {
	if i := s.find(value); i >= 0 {
		s.index = i
	}
}

func (s *Select) set(i int) {
	s.index = i
	if nil != s.OnApply {
		s.OnApply(s.Options[i].Value)
	}
}

// find matches an option by value, then case-insensitively by label.
func (s *Select) find(value string) int {
	for i, o := range s.Options {
		if o.Value == value {
			return i
		}
	}
	for i, o := range s.Options {
		if strings.EqualFold(o.Label, value) {
			return i
		}
	}
	return -1
}
