package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestPNG(t *testing.T, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "wallpaper.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestGradientCommandJSON(t *testing.T) {
	path := writeTestPNG(t, color.NRGBA{R: 255, A: 255})

	out, err := runCLI(t, "gradient", path, "--format", "json")
	require.NoError(t, err)

	var report gradientReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, path, report.Source)
	require.Len(t, report.Stops, gradient.StopCount)
	for _, stop := range report.Stops {
		assert.Equal(t, "#ff0000", stop.Hex)
		assert.InDelta(t, gradient.DefaultStopOpacity, stop.Alpha, 1e-9)
	}
}

func TestGradientCommandYAMLUsesWallpaperFlag(t *testing.T) {
	path := writeTestPNG(t, color.NRGBA{B: 255, A: 255})

	out, err := runCLI(t, "gradient", "--wallpaper", path, "-f", "yaml")
	require.NoError(t, err)

	var report gradientReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, path, report.Source)
	require.Len(t, report.Stops, gradient.StopCount)
	assert.Equal(t, "#0000ff", report.Stops[2].Hex)
}

func TestGradientCommandMissingImageFallsBack(t *testing.T) {
	out, err := runCLI(t, "gradient", filepath.Join(t.TempDir(), "missing.png"), "--format", "json")
	require.NoError(t, err)

	var report gradientReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, newGradientReport(report.Source, gradient.DefaultColors()), report)
}

func TestGradientCommandText(t *testing.T) {
	path := writeTestPNG(t, color.NRGBA{G: 255, A: 255})

	out, err := runCLI(t, "gradient", path)
	require.NoError(t, err)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "#00ff00")
	assert.Contains(t, out, "alpha 0.70")
}

func TestGradientCommandRejectsFormat(t *testing.T) {
	_, err := runCLI(t, "gradient", "x.png", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestNoiseCommandWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brown.wav")

	out, err := runCLI(t, "noise", "--color", "brown", "--duration", "250ms", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestNoiseCommandValidation(t *testing.T) {
	out := filepath.Join(t.TempDir(), "n.wav")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad color", args: []string{"noise", "--color", "pink", "-o", out}, want: "unsupported noise color"},
		{name: "zero duration", args: []string{"noise", "--duration", "0s", "-o", out}, want: "duration must be positive"},
		{name: "missing output", args: []string{"noise"}, want: "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestThemesCommand(t *testing.T) {
	out, err := runCLI(t, "themes")
	require.NoError(t, err)

	for _, name := range models.ThemeNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "(default)")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, "gradient", "x.png", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.Equal(t, hclog.Warn, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
