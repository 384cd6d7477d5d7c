package input

import (
	"git.lost.host/meutraa/optsim/internal/control"
	"github.com/eiannone/keyboard"
)

// Action is what the program should do after a key event.
type Action uint8

const (
	ActionNone Action = iota
	ActionChanged
	ActionQuit
)

// DefaultHandler maps key events onto an option panel. While the prompt is
// open, keys edit the typed value instead.
type DefaultHandler struct {
	panel     *control.Panel
	prompting bool
	prompt    []rune
}

func NewDefaultHandler(panel *control.Panel) *DefaultHandler {
	return &DefaultHandler{panel: panel}
}

// Prompt returns the text being typed and whether the prompt is open.
func (h *DefaultHandler) Prompt() (string, bool) {
	return string(h.prompt), h.prompting
}

func (h *DefaultHandler) Handle(ev keyboard.KeyEvent) Action {
	if nil != ev.Err {
		return ActionNone
	}
	if ev.Key == keyboard.KeyCtrlC {
		return ActionQuit
	}
	if h.prompting {
		return h.handlePrompt(ev)
	}

	switch ev.Key {
	case keyboard.KeyEsc:
		return ActionQuit
	case keyboard.KeyArrowUp:
		h.panel.Move(-1)
		return ActionNone
	case keyboard.KeyArrowDown:
		h.panel.Move(1)
		return ActionNone
	case keyboard.KeyArrowLeft:
		return h.step(-1)
	case keyboard.KeyArrowRight:
		return h.step(1)
	}

	switch ev.Rune {
	case 'q':
		return ActionQuit
	case 'k':
		h.panel.Move(-1)
	case 'j':
		h.panel.Move(1)
	case 'h':
		return h.step(-1)
	case 'l':
		return h.step(1)
	case 'r':
		if c := h.panel.Get(control.IDDirection); nil != c {
			c.Step(1)
			return ActionChanged
		}
	case 'p':
		if c := h.panel.Get(control.IDPreset); nil != c {
			c.Step(1)
			return ActionChanged
		}
	case ':':
		h.prompting = true
		h.prompt = h.prompt[:0]
	}
	return ActionNone
}

func (h *DefaultHandler) step(n int) Action {
	c := h.panel.Selected()
	if nil == c {
		return ActionNone
	}
	c.Step(n)
	return ActionChanged
}

func (h *DefaultHandler) handlePrompt(ev keyboard.KeyEvent) Action {
	switch ev.Key {
	case keyboard.KeyEsc:
		h.prompting = false
		h.prompt = h.prompt[:0]
		return ActionNone
	case keyboard.KeyEnter:
		h.prompting = false
		input := string(h.prompt)
		h.prompt = h.prompt[:0]
		c := h.panel.Selected()
		if nil != c && c.Apply(input) {
			return ActionChanged
		}
		return ActionNone
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		if len(h.prompt) > 0 {
			h.prompt = h.prompt[:len(h.prompt)-1]
		}
		return ActionNone
	case keyboard.KeySpace:
		h.prompt = append(h.prompt, ' ')
		return ActionNone
	}
	if ev.Rune != 0 {
		h.prompt = append(h.prompt, ev.Rune)
	}
	return ActionNone
}
