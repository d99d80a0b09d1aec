// Package cli implements the img2sh command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dialup-inc/img2sh/palette"
	"github.com/dialup-inc/img2sh/resample"
)

const (
	colorUsage   = "Render background-colored blocks instead of ASCII"
	lengthUsage  = "Length of the image's shorter side in characters, or a scale such as 50%"
	charsetUsage = "Built-in ramp for ASCII output"
	charsUsage   = "Custom ramp for ASCII output, densest glyph first (overrides --charset)"
	invertUsage  = "Reverse the ramp, for light text on a dark terminal"
	filterUsage  = "Resampling filter"
	matchUsage   = "How colors are matched to the 256-color palette"
	jobsUsage    = "Number of files rendered at once"
	rowsUsage    = "Number of rows mapped at once within one image"
)

// NewCommand builds the root img2sh command.
func NewCommand() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "img2sh [flags] <file>...",
		Short: "Print images in the terminal as ASCII art or colored blocks",
		Long: `img2sh renders each image as text, one block per file, in argument order.

By default pixels become glyphs chosen by brightness. With --color each pixel
becomes a space painted with the nearest of the terminal's 256 colors.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogAsJSON)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := cfg.Plan()
			if err != nil {
				return err
			}
			return plan.Run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&cfg.Color, "color", "c", cfg.Color, colorUsage)
	f.StringVarP(&cfg.Length, "max_length", "l", cfg.Length, lengthUsage)
	f.StringVar(&cfg.Charset, "charset", cfg.Charset, charsetUsage+" ("+strings.Join(charsetNames(), ", ")+")")
	f.StringVar(&cfg.Chars, "chars", cfg.Chars, charsUsage)
	f.BoolVar(&cfg.Invert, "invert", cfg.Invert, invertUsage)
	f.StringVar(&cfg.Filter, "filter", cfg.Filter, filterUsage+" ("+strings.Join(resample.Filters(), ", ")+")")
	f.StringVar(&cfg.Match, "match", cfg.Match, matchUsage+" ("+strings.Join(palette.Matchers(), ", ")+")")
	f.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, jobsUsage)
	f.IntVar(&cfg.RowWorkers, "row-workers", cfg.RowWorkers, rowsUsage)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "verbosity of logging output")
	pf.BoolVar(&cfg.LogAsJSON, "log-as-json", cfg.LogAsJSON, "change logging format to JSON")

	cmd.SetGlobalNormalizationFunc(normalizeFlag)

	return cmd
}

// normalizeFlag maps the --len and --max-length spellings onto --max_length.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "len", "max-length":
		name = "max_length"
	}
	return pflag.NormalizedName(name)
}

func setupLogging(w io.Writer, levelName string, asJSON bool) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}
