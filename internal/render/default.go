package render

import (
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/optsim/internal/game"
	"git.lost.host/meutraa/optsim/internal/theme"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var ErrTooSmall = errors.New("terminal too small for the playfield")

const (
	minFieldHeight = 10
	fieldTop       = 2 // terminal row of the first playfield row
	fieldLeft      = 3 // terminal column of the left border
	hudGap         = 4
)

type DefaultRenderer struct {
	out          io.Writer
	fd           int
	theme        theme.Theme
	buffer       strings.Builder
	restoreState *term.State

	columns, rows int
	laneWidth     int

	notes, lines *layer
	judge        float64
	coverTop     float64
	coverBottom  float64

	texts  []text
	glyphs map[cell]string
}

type text struct {
	row       int
	message   string
	highlight bool
}

type cell struct {
	r    rune
	e    theme.Element
	lane int // non-zero for note cells
}

// NewDefaultRenderer draws to out, which is put into raw mode by Init when fd
// refers to a terminal.
func NewDefaultRenderer(out io.Writer, fd int, th theme.Theme, laneWidth int) *DefaultRenderer {
	if laneWidth < 1 {
		laneWidth = 1
	}
	return &DefaultRenderer{
		out:       out,
		fd:        fd,
		theme:     th,
		laneWidth: laneWidth,
		notes:     newLayer(),
		lines:     newLayer(),
		judge:     game.DefaultJudgeLine,
		glyphs:    map[cell]string{},
	}
}

func (r *DefaultRenderer) Init() error {
	if term.IsTerminal(r.fd) {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return errors.Wrap(err, "unable to put terminal in raw mode")
		}
		r.restoreState = state
	}

	_, err := io.WriteString(r.out, "\033[?1049h"+ // Enable alternate buffer
		"\033[?25l"+ // Make the cursor invisible
		"\033[2J", // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := io.WriteString(r.out, "\033[?1049l"+ // Disable alternate buffer
		"\033[?25h", // Make the cursor visible
	)
	if nil != r.restoreState {
		if rerr := term.Restore(r.fd, r.restoreState); nil != rerr {
			return errors.Wrap(rerr, "unable to restore terminal")
		}
		r.restoreState = nil
	}
	return err
}

func (r *DefaultRenderer) Resize(columns, rows int) {
	if columns != r.columns || rows != r.rows {
		r.buffer.WriteString("\033[2J")
	}
	r.columns, r.rows = columns, rows
}

func (r *DefaultRenderer) width() int {
	return game.Lanes*r.laneWidth + game.Lanes + 1
}

func (r *DefaultRenderer) height() int {
	return r.rows - fieldTop
}

func (r *DefaultRenderer) Layers() (game.Layers, error) {
	if r.height() < minFieldHeight || r.columns < fieldLeft+r.width() {
		return game.Layers{}, errors.Wrapf(ErrTooSmall, "need %dx%d, have %dx%d",
			fieldLeft+r.width(), minFieldHeight+fieldTop, r.columns, r.rows)
	}
	return game.Layers{Notes: r.notes, Lines: r.lines}, nil
}

func (r *DefaultRenderer) SetCoverHeights(top, bottom float64) {
	r.coverTop, r.coverBottom = top, bottom
}

func (r *DefaultRenderer) SetJudgeLine(position float64) {
	r.judge = position
}

func (r *DefaultRenderer) Text(row int, message string, highlight bool) {
	r.texts = append(r.texts, text{row: row, message: message, highlight: highlight})
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now)
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// row maps a playfield position to a row index, -1 when off the field.
func (r *DefaultRenderer) row(position float64) int {
	h := r.height()
	y := int(math.Floor(position * float64(h)))
	if y < 0 || y >= h {
		return -1
	}
	return y
}

func (r *DefaultRenderer) compose() [][]cell {
	h, w := r.height(), r.width()
	if h <= 0 {
		return nil
	}
	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			if x%(r.laneWidth+1) == 0 {
				grid[y][x] = cell{r: r.theme.Glyph(theme.ElementBorder), e: theme.ElementBorder}
			} else {
				grid[y][x] = cell{r: r.theme.Glyph(theme.ElementBlank), e: theme.ElementBlank}
			}
		}
	}

	fillLanes := func(y int, c cell) {
		for x := 0; x < w; x++ {
			if x%(r.laneWidth+1) != 0 {
				grid[y][x] = c
			}
		}
	}

	judgeRow := int(math.Floor(r.judge * float64(h)))
	if judgeRow >= h {
		judgeRow = h - 1
	} else if judgeRow < 0 {
		judgeRow = 0
	}
	fillLanes(judgeRow, cell{r: r.theme.Glyph(theme.ElementJudge), e: theme.ElementJudge})

	for _, v := range r.lines.ordered() {
		y := r.row(v.position)
		if y < 0 || !v.visible {
			continue
		}
		e := r.theme.Line(v.kind)
		fillLanes(y, cell{r: r.theme.Glyph(e), e: e})
	}

	for _, v := range r.notes.ordered() {
		y := r.row(v.position)
		if y < 0 || !v.visible || v.lane < 1 || v.lane > game.Lanes {
			continue
		}
		start := (v.lane-1)*(r.laneWidth+1) + 1
		for x := start; x < start+r.laneWidth; x++ {
			grid[y][x] = cell{r: r.theme.NoteGlyph(), lane: v.lane}
		}
	}

	cover := cell{r: r.theme.Glyph(theme.ElementCover), e: theme.ElementCover}
	top := coverRows(r.coverTop, h)
	bottom := coverRows(r.coverBottom, h)
	for y := 0; y < top; y++ {
		fillLanes(y, cover)
	}
	for y := h - bottom; y < h; y++ {
		fillLanes(y, cover)
	}
	return grid
}

func coverRows(percent float64, h int) int {
	n := int(math.Round(percent / 100 * float64(h)))
	if n < 0 {
		return 0
	}
	if n > h {
		return h
	}
	return n
}

func (r *DefaultRenderer) glyph(c cell) string {
	if s, ok := r.glyphs[c]; ok {
		return s
	}
	style := r.theme.Style(c.e)
	if c.lane != 0 {
		style = r.theme.Note(c.lane)
	}
	s := style.Render(string(c.r))
	r.glyphs[c] = s
	return s
}

func (r *DefaultRenderer) moveTo(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) flush() {
	for y, line := range r.compose() {
		r.moveTo(fieldTop+y, fieldLeft)
		for _, c := range line {
			r.buffer.WriteString(r.glyph(c))
		}
		// Clears the previous frame's HUD text on this row
		r.buffer.WriteString("\033[K")
	}

	hud := fieldLeft + r.width() + hudGap
	for _, t := range r.texts {
		if t.row < 0 || t.row >= r.height() {
			continue
		}
		r.moveTo(fieldTop+t.row, hud)
		style := r.theme.Style(theme.ElementText)
		if t.highlight {
			style = r.theme.Style(theme.ElementHighlight)
		}
		r.buffer.WriteString(style.Render(t.message))
	}
	r.texts = r.texts[:0]

	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}
