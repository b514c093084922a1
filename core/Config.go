package core

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// EnvName selects properties/<env>.properties on top of pong.properties.
const EnvName = "PONG_ENV"

type Config struct {
	Width, Height   float64
	BackgroundColor color.Color
	FPS             int

	PaddleWidth    float64
	PaddleHeight   float64
	PaddleVelocity float64
	PaddleColor    color.Color

	BallSize     float64
	BallVelocity float64
	BallColor    color.Color

	SpeedDifficultyFactor float64
	DifficultyEvery       int
	BotLerp               float64

	FontFamily    string
	ScoreFontSize float64
	RoundFontSize float64
	TextColor     color.Color

	Backend      string
	Title        string
	ReleaseAfter time.Duration
}

var defaults = map[string]interface{}{
	"width":                 1000,
	"height":                600,
	"backgroundColor":       "#141719",
	"fps":                   60,
	"paddleWidth":           10,
	"paddleHeight":          100,
	"paddleVelocity":        5,
	"paddleColor":           "#ffffff",
	"ballSize":              10,
	"ballVelocity":          0,
	"ballColor":             "#ffffff",
	"speedDifficultyFactor": 3,
	"difficultyEvery":       5,
	"botLerp":               0.5,
	"fontFamily":            "Open Sans",
	"scoreFontSize":         48,
	"roundFontSize":         24,
	"textColor":             "#ffffff",
	"backend":               BackendWindow,
	"title":                 "Pong",
	"releaseAfter":          "150ms",
}

// NewViper returns a viper instance carrying every default and reading
// PONG_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()
	return v
}

// BindFlags registers the command line overrides on fs.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("backend", BackendWindow, "renderer: window or terminal")
	fs.Int("fps", 60, "ticks per second")
	fs.String("title", "Pong", "window title")

	for _, name := range []string{"backend", "fps", "title"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ReadProperties merges ./pong.properties (optional) and, when env is set,
// ./properties/<env>.properties (required) from dir.
func ReadProperties(v *viper.Viper, dir, env string) error {
	v.SetConfigType("properties")
	v.SetConfigName("pong")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read pong.properties: %w", err)
		}
	}

	if env == "" {
		return nil
	}

	v.SetConfigFile(filepath.Join(dir, "properties", env+".properties"))
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("read %s properties: %w", env, err)
	}
	return nil
}

// LoadConfig converts and validates the merged settings.
func LoadConfig(v *viper.Viper) (Config, error) {
	p := &parser{v: v}

	cfg := Config{
		Width:           p.float("width"),
		Height:          p.float("height"),
		BackgroundColor: p.color("backgroundColor"),
		FPS:             p.int("fps"),

		PaddleWidth:    p.float("paddleWidth"),
		PaddleHeight:   p.float("paddleHeight"),
		PaddleVelocity: p.float("paddleVelocity"),
		PaddleColor:    p.color("paddleColor"),

		BallSize:     p.float("ballSize"),
		BallVelocity: p.float("ballVelocity"),
		BallColor:    p.color("ballColor"),

		SpeedDifficultyFactor: p.float("speedDifficultyFactor"),
		DifficultyEvery:       p.int("difficultyEvery"),
		BotLerp:               p.float("botLerp"),

		FontFamily:    p.string("fontFamily"),
		ScoreFontSize: p.float("scoreFontSize"),
		RoundFontSize: p.float("roundFontSize"),
		TextColor:     p.color("textColor"),

		Backend:      p.string("backend"),
		Title:        p.string("title"),
		ReleaseAfter: p.duration("releaseAfter"),
	}

	if len(p.errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(p.errs...))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig is the configuration with nothing but the built-in defaults.
func DefaultConfig() Config {
	cfg, err := LoadConfig(NewViper())
	if err != nil {
		panic(fmt.Errorf("default configuration: %w", err))
	}
	return cfg
}

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, value float64) {
		if value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, value))
		}
	}

	positive("width", c.Width)
	positive("height", c.Height)
	positive("fps", float64(c.FPS))
	positive("paddleWidth", c.PaddleWidth)
	positive("paddleHeight", c.PaddleHeight)
	positive("ballSize", c.BallSize)
	positive("difficultyEvery", float64(c.DifficultyEvery))
	positive("scoreFontSize", c.ScoreFontSize)
	positive("roundFontSize", c.RoundFontSize)

	if c.PaddleVelocity < 0 {
		errs = append(errs, fmt.Errorf("paddleVelocity must be >= 0, got %v", c.PaddleVelocity))
	}
	if c.BallVelocity < 0 {
		errs = append(errs, fmt.Errorf("ballVelocity must be >= 0, got %v", c.BallVelocity))
	}
	if c.SpeedDifficultyFactor < 0 {
		errs = append(errs, fmt.Errorf("speedDifficultyFactor must be >= 0, got %v", c.SpeedDifficultyFactor))
	}
	if c.BotLerp <= 0 || c.BotLerp > 1 {
		errs = append(errs, fmt.Errorf("botLerp must be in (0, 1], got %v", c.BotLerp))
	}
	if c.PaddleHeight > c.Height {
		errs = append(errs, fmt.Errorf("paddleHeight %v does not fit field height %v", c.PaddleHeight, c.Height))
	}
	if c.Backend != BackendWindow && c.Backend != BackendTerminal {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.ReleaseAfter < 0 {
		errs = append(errs, fmt.Errorf("releaseAfter must be >= 0, got %v", c.ReleaseAfter))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) Field() Field {
	return Field{
		Width:                 c.Width,
		Height:                c.Height,
		BackgroundColor:       c.BackgroundColor,
		FPS:                   c.FPS,
		SpeedDifficultyFactor: c.SpeedDifficultyFactor,
		DifficultyEvery:       c.DifficultyEvery,
		BotLerp:               c.BotLerp,
	}
}

// parser collects conversion errors so they are reported together.
type parser struct {
	v    *viper.Viper
	errs []error
}

func (p *parser) float(key string) float64 {
	f, err := cast.ToFloat64E(p.v.Get(key))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return f
}

func (p *parser) int(key string) int {
	i, err := cast.ToIntE(p.v.Get(key))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return i
}

func (p *parser) string(key string) string {
	return cast.ToString(p.v.Get(key))
}

func (p *parser) duration(key string) time.Duration {
	d, err := cast.ToDurationE(p.v.Get(key))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
	}
	return d
}

func (p *parser) color(key string) color.Color {
	c, err := colorful.Hex(p.string(key))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return color.White
	}
	return c
}
