package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/borgmon/focus-wave/pkg/audio"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/wallpaper"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "1.0.0"

// Styles for terminal output
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
	styleVersion = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	styleHint    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"}).Italic(true)
)

type cliOptions struct {
	logLevel  string
	wallpaper string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "focus-wave",
		Short: "Ambient focus sounds in the menu bar",
		Long: `Focus Wave plays looping ambient sounds from the menu bar. Its panel is
tinted with a gradient sampled from the desktop wallpaper.

Run without a command to start the menu bar app.

Examples:
  # Start the app with verbose logging
  focus-wave --log-level debug

  # Show the gradient the current wallpaper produces
  focus-wave gradient

  # Render ten seconds of brown noise
  focus-wave noise --color brown --duration 10s --output brown.wav`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runApp(logger, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.wallpaper, "wallpaper", "", "image to sample instead of the desktop wallpaper")

	rootCmd.AddCommand(
		newGradientCmd(opts),
		newNoiseCmd(opts),
		newThemesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// gradientStop is one stop of a printed gradient
type gradientStop struct {
	Hex   string  `json:"hex" yaml:"hex"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
}

type gradientReport struct {
	Source string         `json:"source" yaml:"source"`
	Stops  []gradientStop `json:"stops" yaml:"stops"`
}

func newGradientReport(source string, colors gradient.Colors) gradientReport {
	report := gradientReport{Source: source, Stops: make([]gradientStop, 0, len(colors))}
	for _, c := range colors {
		report.Stops = append(report.Stops, gradientStop{Hex: c.Hex(), Alpha: c.A})
	}
	return report
}

func newGradientCmd(opts *cliOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "gradient [image]",
		Short: "Print the gradient sampled from an image",
		Long: `Print the three gradient stops sampled from an image. Without an argument the
--wallpaper flag or the current desktop wallpaper is used. Images that are
missing or cannot be decoded produce the default gradient.

Examples:
  focus-wave gradient ~/Pictures/beach.jpg
  focus-wave gradient --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (use text, json or yaml)", format)
			}

			logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				path = resolveWallpaper(cmd.Context(), opts, logger)
			}

			colors := gradient.NewExtractor(gradient.Options{}).ExtractFile(path)
			return writeGradient(cmd.OutOrStdout(), format, newGradientReport(path, colors))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return cmd
}

// resolveWallpaper returns the image the app would sample, or "" when there is none
func resolveWallpaper(ctx context.Context, opts *cliOptions, logger hclog.Logger) string {
	if ctx == nil {
		ctx = context.Background()
	}
	provider := &wallpaper.OverrideProvider{
		Override: func() string { return opts.wallpaper },
		Fallback: wallpaper.NewSystemProvider(),
	}

	path, err := provider.Path(ctx)
	switch {
	case errors.Is(err, wallpaper.ErrNoWallpaper):
		logger.Debug("no desktop wallpaper found")
	case err != nil:
		logger.Debug("failed to resolve desktop wallpaper", "error", err)
	}
	return path
}

func writeGradient(w io.Writer, format string, report gradientReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	source := report.Source
	if source == "" {
		source = "(none)"
	}
	fmt.Fprintf(w, "%s %s\n", styleLabel.Render("Source"), styleValue.Render(source))
	for i, stop := range report.Stops {
		fmt.Fprintf(w, "  %d %s %s %s\n",
			i+1,
			swatch(stop.Hex),
			styleValue.Render(stop.Hex),
			styleHint.Render(fmt.Sprintf("alpha %.2f", stop.Alpha)),
		)
	}
	return nil
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

func newNoiseCmd(opts *cliOptions) *cobra.Command {
	var (
		color    string
		duration time.Duration
		output   string
	)

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Render generated noise to a WAV file",
		Long: `Render one of the generated sounds to a 16-bit stereo WAV file.

Examples:
  focus-wave noise --output white.wav
  focus-wave noise --color brown --duration 1m --output brown.wav`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sound models.Sound
			switch color {
			case "white":
				sound, _ = models.NewConfig().FindSound(models.SoundWhiteNoise)
			case "brown":
				sound, _ = models.NewConfig().FindSound(models.SoundBrownNoise)
			default:
				return fmt.Errorf("unsupported noise color %q (use white or brown)", color)
			}
			if duration <= 0 {
				return fmt.Errorf("duration must be positive")
			}

			logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := audio.NewLibrary().WriteWAV(f, sound, duration); err != nil {
				f.Close()
				return fmt.Errorf("failed to render %s: %w", sound.Name, err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			logger.Info("noise written", "sound", sound.Name, "duration", duration, "path", output)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleLabel.Render("Wrote"), styleValue.Render(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "white", "noise color (white, brown)")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "length of the rendered audio")
	cmd.Flags().StringVarP(&output, "output", "o", "", "WAV file to write")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			defaultName := models.DefaultTheme().Name
			for _, th := range models.Themes() {
				primary := gradient.FromColor(th.Primary).Hex()
				secondary := gradient.FromColor(th.Secondary).Hex()

				line := fmt.Sprintf("%s%s %s", swatch(primary), swatch(secondary), styleValue.Render(th.Name))
				if th.Name == defaultName {
					line += " " + styleHint.Render("(default)")
				}
				fmt.Fprintln(w, line)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  %s %s\n", styleBrand.Render("focus-wave"), styleVersion.Render(version))
			fmt.Fprintf(w, "    %s %s\n", styleLabel.Render("OS/Arch"), styleValue.Render(runtime.GOOS+"/"+runtime.GOARCH))
			fmt.Fprintf(w, "    %s      %s\n", styleLabel.Render("Go"), styleValue.Render(runtime.Version()))
		},
	}
}
