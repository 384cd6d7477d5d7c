package render

import (
	"time"

	"git.lost.host/meutraa/optsim/internal/game"
)

type Renderer interface {
	Init() error
	Deinit() error
	Resize(columns, rows int)
	// Layers returns the note and line containers of the playfield
	Layers() (game.Layers, error)
	SetCoverHeights(top, bottom float64)
	SetJudgeLine(position float64)
	// Text queues a line of HUD text for the next frame
	Text(row int, message string, highlight bool)
	RenderLoop(period time.Duration, render func(now time.Time) bool)
}
