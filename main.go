package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"git.lost.host/meutraa/optsim/internal/config"
	xlog "git.lost.host/meutraa/optsim/internal/log"
	"git.lost.host/meutraa/optsim/internal/render"
	"git.lost.host/meutraa/optsim/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, closer, err := xlog.Open(cfg.LogFile, xlog.LevelFromString(cfg.LogLevel))
	if nil != err {
		return err
	}
	defer closer.Close()

	fd := int(os.Stdout.Fd())
	columns, rows, err := term.GetSize(fd)
	if nil != err {
		return errors.Wrap(err, "unable to get terminal size")
	}

	r := render.NewDefaultRenderer(os.Stdout, fd, theme.NewDefaultTheme(), cfg.LaneWidth)
	r.Resize(columns, rows)

	p := &Program{Renderer: r, Log: logger}
	if err := p.Init(cfg); nil != err {
		logger.Errorf("startup failed: %v", err)
		return err
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.Warnf("unable to close keyboard: %v", err)
		}
	}()

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			logger.Errorf("%v", err)
		}
	}()
	defer func() {
		if v := recover(); nil != v {
			crashed(v, logger, closer, os.Stderr, r.Deinit, keyboard.Close)
			os.Exit(1)
		}
	}()

	r.RenderLoop(cfg.FramePeriod, func(now time.Time) bool {
		if c, rw, err := term.GetSize(fd); nil == err {
			r.Resize(c, rw)
		}
		if !p.Update(now, keyChannel) {
			return false
		}
		p.Render()
		return true
	})
	p.Deinit()
	return nil
}

// crashed restores the terminal, reports v and closes the log. The caller
// exits afterwards, which skips every deferred close.
func crashed(v interface{}, logger *xlog.Logger, logFile io.Closer, stderr io.Writer, restore ...func() error) {
	for _, fn := range restore {
		if err := fn(); nil != err {
			logger.Warnf("restore after crash: %v", err)
		}
	}
	stack := debug.Stack()
	logger.Errorf("crashed: %v\n%s", v, stack)
	if err := logFile.Close(); nil != err {
		fmt.Fprintln(stderr, err)
	}
	fmt.Fprintf(stderr, "crashed: %v\n%s", v, stack)
}
