package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/optsim/internal/config"
	"git.lost.host/meutraa/optsim/internal/control"
	"git.lost.host/meutraa/optsim/internal/game"
	"git.lost.host/meutraa/optsim/internal/input"
	xlog "git.lost.host/meutraa/optsim/internal/log"
	"git.lost.host/meutraa/optsim/internal/render"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

type Program struct {
	Renderer render.Renderer
	Log      *xlog.Logger

	options *game.Options
	field   *game.Field
	panel   *control.Panel
	input   *input.DefaultHandler

	frameCounter uint64
	direction    game.Direction
}

func (p *Program) Init(cfg *config.Config) error {
	var err error
	p.options, err = game.NewOptions(cfg.Settings)
	if nil != err {
		return errors.Wrap(err, "invalid settings")
	}

	layers, err := p.Renderer.Layers()
	if nil != err {
		return err
	}
	p.Renderer.SetJudgeLine(cfg.JudgeLine)
	p.field, err = game.NewField(p.options, cfg.Grid, cfg.JudgeLine, layers)
	if nil != err {
		return errors.Wrap(err, "unable to create playfield")
	}
	p.options.BindCovers(p.Renderer)

	p.panel = control.ForOptions(p.options, true, func(pr game.Preset) {
		p.Log.Infof("preset %s applied: %+v", pr.Name, pr.Settings)
	})
	p.input = input.NewDefaultHandler(p.panel)
	p.direction = p.options.Direction()

	p.Log.Infof("started: %+v, judge line %.2f, measure %v", cfg.Settings, cfg.JudgeLine, cfg.Grid.Measure)
	return nil
}

// Update applies the pending key events then advances the field. It returns
// false once the user asked to quit.
func (p *Program) Update(now time.Time, keys <-chan keyboard.KeyEvent) bool {
	for i := len(keys); i > 0; i-- {
		ev := <-keys
		if nil != ev.Err {
			p.Log.Warnf("key event: %v", ev.Err)
			continue
		}
		if p.input.Handle(ev) == input.ActionQuit {
			return false
		}
	}

	if d := p.options.Direction(); d != p.direction {
		p.Log.Debugf("direction %v at %v", d, p.field.SongTime())
		p.direction = d
	}

	p.field.Tick(now)
	return true
}

func (p *Program) Render() {
	p.frameCounter++

	row := 0
	for i, c := range p.panel.Controls() {
		p.Renderer.Text(row, fmt.Sprintf(" %-10s %8s ", c.Label(), c.Value()), i == p.panel.SelectedIndex())
		row++
	}
	row++

	if text, open := p.input.Prompt(); open {
		p.Renderer.Text(row, fmt.Sprintf(" %s: %s_", p.panel.Selected().Label(), text), false)
	} else {
		p.Renderer.Text(row, " ←→ adjust  ↑↓ select  : type  r reverse  p preset  q quit", false)
	}
	row += 2

	st := p.field.Stats()
	cursor := p.field.Cursor()
	p.Renderer.Text(row, fmt.Sprintf("   Song time:  %8.2fs", p.field.SongTime().Seconds()), false)
	p.Renderer.Text(row+1, fmt.Sprintf("   Next note:  %8.2fs  #%d", cursor.NextNote.Seconds(), cursor.NoteIndex), false)
	p.Renderer.Text(row+2, fmt.Sprintf("      Active:  %8d", p.field.Store().Len()), false)
	p.Renderer.Text(row+3, fmt.Sprintf("       Notes:  %8d", st.Notes), false)
	p.Renderer.Text(row+4, fmt.Sprintf("  Bars/Beats:  %4d/%-4d", st.Bars, st.Beats), false)
	p.Renderer.Text(row+5, fmt.Sprintf("      Judged:  %8d", st.Judged), false)
	p.Renderer.Text(row+6, fmt.Sprintf("      Frames:  %8d", p.frameCounter), false)
}

func (p *Program) Deinit() {
	st := p.field.Stats()
	p.Log.Infof("stopped at %v after %d frames: %d notes, %d bars, %d beats, %d judged, %d removed",
		p.field.SongTime(), p.frameCounter, st.Notes, st.Bars, st.Beats, st.Judged, st.Removed)
}
