package config

import (
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/optsim/internal/game"
	xlog "git.lost.host/meutraa/optsim/internal/log"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	JudgeLine   float64 // Fraction of the playfield height
	Preset      string
	Settings    game.Settings
	Grid        game.Grid
	FramePeriod time.Duration
	LaneWidth   int
	LogFile     string
	LogLevel    string
}

// Parse reads the command line. A preset, when given, replaces the four
// playback settings.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("optsim", "Rhythm game option simulator")
	app.Version(Version)
	app.HelpFlag.Short('h')

	var (
		judgeLine   = app.Flag("judge-line", "Judgement line position in percent of the playfield").Default("80").String()
		speed       = app.Flag("speed", "Scroll speed in playfield heights per second").Default("0.4").Short('s').Float64()
		direction   = app.Flag("direction", "Scroll direction").Default("forward").Short('D').Enum("forward", "backward")
		sudden      = app.Flag("sudden", "Top cover in percent").Default("0").Float64()
		hidden      = app.Flag("hidden", "Bottom cover in percent").Default("0").Float64()
		preset      = app.Flag("preset", "Named option preset").Short('P').Enum(game.PresetNames()...)
		measure     = app.Flag("measure", "Measure length").Default("4s").Duration()
		framePeriod = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
		laneWidth   = app.Flag("lane-width", "Columns per lane").Default("6").Short('w').Int()
		logFile     = app.Flag("log-file", "Log destination, - for stderr").Default("optsim.log").String()
		logLevel    = app.Flag("log-level", "Log level").Default("info").Enum(xlog.LevelNames()...)
	)

	if _, err := app.Parse(args); nil != err {
		return nil, errors.Wrap(err, "unable to parse arguments")
	}

	d, err := game.ParseDirection(*direction)
	if nil != err {
		return nil, err
	}

	c := &Config{
		JudgeLine: JudgeLine(*judgeLine),
		Preset:    *preset,
		Settings: game.Settings{
			Direction: d,
			Speed:     *speed,
			Sudden:    *sudden,
			Hidden:    *hidden,
		},
		Grid:        game.DefaultGrid(),
		FramePeriod: *framePeriod,
		LaneWidth:   *laneWidth,
		LogFile:     *logFile,
		LogLevel:    *logLevel,
	}
	c.Grid.Measure = *measure

	if "" != c.Preset {
		p, _ := game.FindPreset(c.Preset)
		c.Settings = p.Settings
	}

	if err := c.validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if !game.ValidSpeed(c.Settings.Speed) {
		return errors.Wrapf(game.ErrInvalidSpeed, "speed %v", c.Settings.Speed)
	}
	if c.Settings.Sudden < 0 || c.Settings.Sudden > 100 || c.Settings.Hidden < 0 || c.Settings.Hidden > 100 {
		return errors.New("covers must be between 0 and 100 percent")
	}
	if err := c.Grid.Validate(); nil != err {
		return errors.Wrap(err, "invalid measure")
	}
	if c.FramePeriod <= 0 {
		return errors.New("frame period must be positive")
	}
	if c.LaneWidth < 1 {
		return errors.New("lane width must be at least 1")
	}
	return nil
}

// JudgeLine converts a percentage such as "80" or "80%" to a fraction.
// Anything unparsable or outside 0..100 gives the default.
func JudgeLine(percent string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(percent), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err || v != v || v < 0 || v > 100 {
		return game.DefaultJudgeLine
	}
	return v / 100
}
