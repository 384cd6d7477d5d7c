package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/optsim/internal/game"
	"git.lost.host/meutraa/optsim/internal/theme"
)

func newTestRenderer(columns, rows int) (*DefaultRenderer, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewDefaultRenderer(&out, -1, theme.NewDefaultTheme(), 3)
	r.Resize(columns, rows)
	return r, &out
}

// plain returns the composed playfield without styling.
func plain(r *DefaultRenderer) []string {
	var rows []string
	for _, line := range r.compose() {
		var sb strings.Builder
		for _, c := range line {
			sb.WriteRune(c.r)
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func TestLayersTooSmall(t *testing.T) {
	r, _ := newTestRenderer(10, 40)
	if _, err := r.Layers(); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	r.Resize(80, 5)
	if _, err := r.Layers(); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	r.Resize(80, 22)
	layers, err := r.Layers()
	if nil != err || nil == layers.Notes || nil == layers.Lines {
		t.Fatalf("expected layers, got %v", err)
	}
}

func TestLayerHandles(t *testing.T) {
	l := newLayer()
	a := l.Create(game.VisualNote, 1)
	b := l.Create(game.VisualNote, 2)
	if a == b {
		t.Fatal("handles reused")
	}
	l.Destroy(a)
	l.Destroy(a)
	l.SetPosition(a, 0.5)
	if l.Len() != 1 {
		t.Fatalf("expected 1 visual, got %d", l.Len())
	}
	if c := l.Create(game.VisualBar, 0); c == a {
		t.Fatal("destroyed handle reused")
	}
}

func TestComposePlayfield(t *testing.T) {
	// 20 rows of playfield
	r, _ := newTestRenderer(80, 22)
	layers, err := r.Layers()
	if nil != err {
		t.Fatal(err)
	}
	r.SetJudgeLine(0.8)

	note := layers.Notes.Create(game.VisualNote, 2)
	layers.Notes.SetPosition(note, 0.5)
	hidden := layers.Notes.Create(game.VisualNote, 4)
	layers.Notes.SetPosition(hidden, 0.25)
	layers.Notes.SetVisible(hidden, false)
	offscreen := layers.Notes.Create(game.VisualNote, 1)
	layers.Notes.SetPosition(offscreen, -0.1)
	bar := layers.Lines.Create(game.VisualBar, 0)
	layers.Lines.SetPosition(bar, 0.12)
	beat := layers.Lines.Create(game.VisualBeat, 0)
	layers.Lines.SetPosition(beat, 0.32)

	rows := plain(r)
	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	empty := "│   │   │   │   │   │"
	expected := map[int]string{
		0:  empty,
		2:  "│───│───│───│───│───│",
		5:  empty,
		6:  "│╌╌╌│╌╌╌│╌╌╌│╌╌╌│╌╌╌│",
		10: "│   │▆▆▆│   │   │   │",
		16: "│━━━│━━━│━━━│━━━│━━━│",
	}
	for y, row := range expected {
		if rows[y] != row {
			t.Errorf("row %d: expected %q, got %q", y, row, rows[y])
		}
	}
}

func TestComposeCovers(t *testing.T) {
	r, _ := newTestRenderer(80, 22)
	layers, _ := r.Layers()
	n := layers.Notes.Create(game.VisualNote, 3)
	layers.Notes.SetPosition(n, 0.05)

	o, _ := game.NewOptions(game.Settings{Direction: game.Forward, Speed: 1, Sudden: 10, Hidden: 25})
	o.BindCovers(r)

	rows := plain(r)
	covered := "│▓▓▓│▓▓▓│▓▓▓│▓▓▓│▓▓▓│"
	for y := 0; y < 2; y++ {
		if rows[y] != covered {
			t.Errorf("row %d not covered by sudden: %q", y, rows[y])
		}
	}
	// round(25% of 20) = 5 rows
	for y := 15; y < 20; y++ {
		if rows[y] != covered {
			t.Errorf("row %d not covered by hidden: %q", y, rows[y])
		}
	}
	if rows[2] == covered || rows[14] == covered {
		t.Fatal("cover too tall")
	}
}

func TestFlushWritesTextOnce(t *testing.T) {
	r, out := newTestRenderer(80, 22)
	r.Text(0, "Speed 0.4", false)
	r.Text(99, "dropped", false)
	r.flush()
	if !strings.Contains(out.String(), "Speed 0.4") || strings.Contains(out.String(), "dropped") {
		t.Fatalf("unexpected output %q", out.String())
	}
	out.Reset()
	r.flush()
	if strings.Contains(out.String(), "Speed 0.4") {
		t.Fatal("text kept past its frame")
	}
}

func TestRenderLoopStops(t *testing.T) {
	r, _ := newTestRenderer(80, 22)
	frames := 0
	var last time.Time
	r.RenderLoop(time.Millisecond, func(now time.Time) bool {
		if now.Before(last) {
			t.Fatal("timestamps went backwards")
		}
		last = now
		frames++
		return frames < 3
	})
	if frames != 3 {
		t.Fatalf("expected 3 frames, got %d", frames)
	}
}

func TestInitDeinitWithoutTerminal(t *testing.T) {
	r, out := newTestRenderer(80, 22)
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	if err := r.Deinit(); nil != err {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[?1049h") || !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Fatalf("unexpected escape sequences %q", out.String())
	}
}
