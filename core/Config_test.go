package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 10.0, cfg.PaddleWidth)
	assert.Equal(t, 100.0, cfg.PaddleHeight)
	assert.Equal(t, 5.0, cfg.PaddleVelocity)
	assert.Equal(t, 10.0, cfg.BallSize)
	assert.Equal(t, 0.0, cfg.BallVelocity)
	assert.Equal(t, 3.0, cfg.SpeedDifficultyFactor)
	assert.Equal(t, 5, cfg.DifficultyEvery)
	assert.Equal(t, 0.5, cfg.BotLerp)
	assert.Equal(t, "Open Sans", cfg.FontFamily)
	assert.Equal(t, 48.0, cfg.ScoreFontSize)
	assert.Equal(t, 24.0, cfg.RoundFontSize)
	assert.Equal(t, BackendWindow, cfg.Backend)
	assert.Equal(t, 150*time.Millisecond, cfg.ReleaseAfter)

	bg, err := colorful.Hex("#141719")
	require.NoError(t, err)
	assert.Equal(t, bg, cfg.BackgroundColor)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PONG_FPS", "30")
	t.Setenv("PONG_BACKEND", BackendTerminal)

	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, BackendTerminal, cfg.Backend)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		key, value, msg string
	}{
		{"PONG_WIDTH", "0", "width must be > 0"},
		{"PONG_HEIGHT", "-600", "height must be > 0"},
		{"PONG_FPS", "0", "fps must be > 0"},
		{"PONG_FPS", "fast", "fps"},
		{"PONG_BALLCOLOR", "blue-ish", "ballColor"},
		{"PONG_BOTLERP", "1.5", "botLerp"},
		{"PONG_PADDLEHEIGHT", "700", "does not fit"},
		{"PONG_BACKEND", "vga", "unknown backend"},
		{"PONG_DIFFICULTYEVERY", "0", "difficultyEvery"},
		{"PONG_RELEASEAFTER", "soon", "releaseAfter"},
	}

	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			t.Setenv(c.key, c.value)

			_, err := LoadConfig(NewViper())
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.FPS = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "fps")
}

func TestReadProperties_BaseAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pong.properties"), "fps = 30\nbackend = terminal\n")
	writeFile(t, filepath.Join(dir, "properties", "dev.properties"), "width = 800\nfps = 45\n")

	v := NewViper()
	require.NoError(t, ReadProperties(v, dir, "dev"))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 45, cfg.FPS)
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.Equal(t, 600.0, cfg.Height)
}

func TestReadProperties_NoFiles(t *testing.T) {
	v := NewViper()
	require.NoError(t, ReadProperties(v, t.TempDir(), ""))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.Width)
}

func TestReadProperties_MissingEnvFile(t *testing.T) {
	err := ReadProperties(NewViper(), t.TempDir(), "prod")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prod")
}

func TestBindFlags(t *testing.T) {
	v := NewViper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--backend=terminal", "--fps=120"}))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.Equal(t, 120, cfg.FPS)
	assert.Equal(t, "Pong", cfg.Title)
}

func TestConfig_Field(t *testing.T) {
	f := DefaultConfig().Field()
	assert.Equal(t, 1000.0, f.Width)
	assert.Equal(t, 600.0, f.Height)
	assert.Equal(t, 60, f.FPS)
	assert.Equal(t, 3.0, f.SpeedDifficultyFactor)
	assert.Equal(t, 5, f.DifficultyEvery)
	assert.Equal(t, 0.5, f.BotLerp)
}
