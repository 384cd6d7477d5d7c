package theme

import (
	"git.lost.host/meutraa/optsim/internal/game"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type DefaultTheme struct {
	notes  map[int]lipgloss.Style
	styles map[Element]lipgloss.Style
}

const (
	noteSym = '▆'
)

var (
	laneColors = map[int]string{
		1:  "#ff4d4d", // red
		2:  "#4dff4d", // green
		3:  "#4d4dff", // blue
		4:  "#ffff4d", // yellow
		5:  "#ff4dff", // pink
		-1: "#ffffff", // other white
	}
	background = "#000000"
	barColor   = "#e0e0e0"
	judgeColor = "#ff2020"
	coverColor = "#303030"

	glyphs = map[Element]rune{
		ElementBlank:  ' ',
		ElementBorder: '│',
		ElementJudge:  '━',
		ElementBar:    '─',
		ElementBeat:   '╌',
		ElementCover:  '▓',
	}
)

func NewDefaultTheme() *DefaultTheme {
	t := &DefaultTheme{
		notes:  map[int]lipgloss.Style{},
		styles: map[Element]lipgloss.Style{},
	}
	for lane := 1; lane <= game.Lanes; lane++ {
		t.notes[lane] = lipgloss.NewStyle().Foreground(lipgloss.Color(LaneColor(lane).Hex()))
	}
	t.notes[-1] = lipgloss.NewStyle().Foreground(lipgloss.Color(LaneColor(-1).Hex()))

	bar := mustHex(barColor)
	t.styles[ElementBlank] = lipgloss.NewStyle()
	t.styles[ElementBorder] = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.BlendLab(mustHex(background), 0.5).Hex()))
	t.styles[ElementJudge] = lipgloss.NewStyle().Foreground(lipgloss.Color(judgeColor)).Bold(true)
	t.styles[ElementBar] = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Hex()))
	// Beat lines are the bar color faded most of the way into the background
	t.styles[ElementBeat] = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.BlendLab(mustHex(background), 0.6).Hex()))
	t.styles[ElementCover] = lipgloss.NewStyle().Foreground(lipgloss.Color(coverColor))
	t.styles[ElementText] = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Hex()))
	t.styles[ElementHighlight] = lipgloss.NewStyle().Foreground(lipgloss.Color(background)).Background(lipgloss.Color(bar.Hex())).Bold(true)
	return t
}

func (t *DefaultTheme) Note(lane int) lipgloss.Style {
	s, ok := t.notes[lane]
	if !ok {
		return t.notes[-1]
	}
	return s
}

func (t *DefaultTheme) Style(e Element) lipgloss.Style {
	return t.styles[e]
}

func (t *DefaultTheme) Glyph(e Element) rune {
	g, ok := glyphs[e]
	if !ok {
		return ' '
	}
	return g
}

func (t *DefaultTheme) NoteGlyph() rune { return noteSym }

func (t *DefaultTheme) Line(kind game.VisualKind) Element {
	if kind == game.VisualBar {
		return ElementBar
	}
	return ElementBeat
}

// LaneColor is the note color of a lane, white for lanes outside the table.
func LaneColor(lane int) colorful.Color {
	hex, ok := laneColors[lane]
	if !ok {
		hex = laneColors[-1]
	}
	return mustHex(hex)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if nil != err {
		panic(err)
	}
	return c
}
