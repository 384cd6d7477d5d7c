package theme

import (
	"git.lost.host/meutraa/optsim/internal/game"
	"github.com/charmbracelet/lipgloss"
)

type Element uint8

const (
	ElementBlank Element = iota
	ElementBorder
	ElementJudge
	ElementBar
	ElementBeat
	ElementCover
	ElementText
	ElementHighlight
)

type Theme interface {
	// Note is the style of a note in the given lane
	Note(lane int) lipgloss.Style
	Style(e Element) lipgloss.Style
	Glyph(e Element) rune
	NoteGlyph() rune
	// Line is the element a timing line visual is drawn as
	Line(kind game.VisualKind) Element
}
