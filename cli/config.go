package cli

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/dialup-inc/img2sh"
	"github.com/dialup-inc/img2sh/palette"
	"github.com/dialup-inc/img2sh/resample"
	"github.com/dialup-inc/img2sh/size"
)

// DefaultRamp is Paul Bourke's 70-level ramp, densest glyph first. Dark
// pixels get dense glyphs, which reads as dark ink on a light background.
const DefaultRamp = `$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`'. "

// Charsets are the built-in ramps selectable with --charset.
var Charsets = map[string]string{
	"default": DefaultRamp,
	"short":   "@%#*+=-:. ",
	"classic": "@80GCLft1i;:,. ",
	"blocks":  "█▓▒░ ",
}

func charsetNames() []string {
	names := make([]string, 0, len(Charsets))
	for name := range Charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config holds the raw command-line settings.
type Config struct {
	Color  bool
	Length string

	Charset string
	Chars   string
	Invert  bool

	Filter string
	Match  string

	Jobs       int
	RowWorkers int

	LogLevel  string
	LogAsJSON bool
}

func DefaultConfig() Config {
	return Config{
		Length:     size.MaxSide(size.DefaultMaxSide).String(),
		Charset:    "default",
		Filter:     string(resample.DefaultFilter),
		Match:      palette.DefaultMatcher,
		Jobs:       runtime.GOMAXPROCS(0),
		RowWorkers: 1,
		LogLevel:   "warn",
	}
}

// Plan is a validated Config, ready to render files.
type Plan struct {
	Constraint  size.Constraint
	Mode        img2sh.RenderMode
	Filter      resample.Filter
	Transformer img2sh.Transformer
	Jobs        int
}

// Plan checks every setting up front so that a bad argument stops the run
// before any file is touched.
func (c Config) Plan() (*Plan, error) {
	constraint, err := size.Parse(c.Length)
	if err != nil {
		return nil, err
	}

	filter, err := resample.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}

	if c.Jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1, got %d", c.Jobs)
	}

	var mode img2sh.RenderMode
	if c.Color {
		q, err := palette.New(c.Match)
		if err != nil {
			return nil, err
		}
		mode = img2sh.Color{Quantizer: q}
	} else {
		ramp, err := c.ramp()
		if err != nil {
			return nil, err
		}
		mode = img2sh.Greyscale{Ramp: ramp}
	}

	return &Plan{
		Constraint:  constraint,
		Mode:        mode,
		Filter:      filter,
		Transformer: img2sh.Transformer{Workers: c.RowWorkers},
		Jobs:        c.Jobs,
	}, nil
}

func (c Config) ramp() (img2sh.Ramp, error) {
	chars := c.Chars
	if chars == "" {
		var ok bool
		chars, ok = Charsets[c.Charset]
		if !ok {
			return nil, fmt.Errorf("unknown charset %q (want one of %v)", c.Charset, charsetNames())
		}
	}

	ramp, err := img2sh.NewRamp(chars)
	if err != nil {
		return nil, err
	}
	if c.Invert {
		ramp = ramp.Reverse()
	}
	return ramp, nil
}
