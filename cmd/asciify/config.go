package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

const (
	flagInput       = "input"
	flagOutput      = "output"
	flagWidth       = "width"
	flagDetail      = "detail"
	flagFormat      = "format"
	flagInterp      = "interp"
	flagSharpen     = "sharpen"
	flagCellAspect  = "cell-aspect"
	flagFont        = "font"
	flagFontSize    = "font-size"
	flagFitTerminal = "fit-terminal"
	flagConfig      = "config"
)

var (
	// ErrConfigFile indicates the config file could not be read or applied.
	ErrConfigFile = errors.New("config file")
	// ErrMissingInput indicates no input image was given and none could be
	// prompted for.
	ErrMissingInput = errors.New("no input image")
	// ErrStdoutFormat indicates a binary format was requested on stdout.
	ErrStdoutFormat = errors.New("only txt output can be written to stdout")
)

// Config holds the conversion settings gathered from flags, the config
// file and interactive prompts.
type Config struct {
	Input       string
	Output      string
	Width       int
	Detail      int
	Format      string
	Interp      string
	Sharpen     bool
	CellAspect  float64
	Font        string
	FontSize    float64
	FitTerminal bool
	ConfigFile  string
}

// NewConfig returns a Config holding the default settings.
func NewConfig() *Config {
	return &Config{
		Width:      img2ascii.DefaultTargetWidth,
		Detail:     img2ascii.DefaultDetailLevel,
		Format:     string(img2ascii.FormatText),
		Interp:     imageutil.InterpolationArea.String(),
		CellAspect: img2ascii.DefaultCellAspect,
		FontSize:   img2ascii.DefaultFontSize,
	}
}

// RegisterFlags adds the conversion flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Input, flagInput, "i", c.Input,
		"path to the input image (prompted for when omitted on a terminal)")
	flags.StringVarP(&c.Output, flagOutput, "o", c.Output,
		`output path, "-" for stdout (default "ascii_image.<format>")`)
	flags.IntVarP(&c.Width, flagWidth, "w", c.Width,
		"output width in characters")
	flags.IntVarP(&c.Detail, flagDetail, "d", c.Detail,
		fmt.Sprintf("detail level, %d to %d", img2ascii.MinDetailLevel, img2ascii.MaxDetailLevel))
	flags.StringVarP(&c.Format, flagFormat, "f", c.Format,
		fmt.Sprintf("output format, one of: %s", strings.Join(img2ascii.FormatStrings(), ", ")))
	flags.StringVar(&c.Interp, flagInterp, c.Interp,
		fmt.Sprintf("resampling filter, one of: %s", strings.Join(imageutil.InterpolationNames(), ", ")))
	flags.BoolVar(&c.Sharpen, flagSharpen, c.Sharpen,
		"sharpen the image after resampling")
	flags.Float64Var(&c.CellAspect, flagCellAspect, c.CellAspect,
		"glyph width to height ratio used to correct the row count")
	flags.BoolVar(&c.FitTerminal, flagFitTerminal, c.FitTerminal,
		"use the terminal width as the output width")
	flags.StringVar(&c.ConfigFile, flagConfig, c.ConfigFile,
		"YAML file with default flag values")
}

// RegisterFontFlags adds the rasterizer flags to flags. They are shared by
// the root and palette commands.
func (c *Config) RegisterFontFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Font, flagFont, c.Font,
		"TrueType font for png output (default Go Mono)")
	flags.Float64Var(&c.FontSize, flagFontSize, c.FontSize,
		"font size in points for png output")
}

// RegisterCompletions registers shell completions for the enum flags.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(flagFormat,
		cobra.FixedCompletions(img2ascii.FormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering format completion: %w", err)
	}

	err = cmd.RegisterFlagCompletionFunc(flagInterp,
		cobra.FixedCompletions(imageutil.InterpolationNames(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering interp completion: %w", err)
	}

	err = cmd.MarkFlagFilename(flagConfig, "yaml", "yml")
	if err != nil {
		return fmt.Errorf("registering config completion: %w", err)
	}

	return nil
}

// RasterizerOptions returns the rasterizer options selected by c.
func (c *Config) RasterizerOptions() []img2ascii.RasterizerOption {
	opts := []img2ascii.RasterizerOption{img2ascii.WithFontSize(c.FontSize)}
	if c.Font != "" {
		opts = append(opts, img2ascii.WithFontFile(c.Font))
	}

	return opts
}

// applyConfigFile reads the YAML mapping at path and sets every flag it
// names that was not given on the command line. Keys are flag names.
func applyConfigFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	var values map[string]any

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
	}

	// Record explicit flags first so file values never shadow them.
	explicit := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})

	for key, value := range values {
		f := flags.Lookup(key)
		if f == nil || key == flagConfig {
			return fmt.Errorf("%w: %s: unknown key %q", ErrConfigFile, path, key)
		}

		if explicit[key] {
			continue
		}

		switch value.(type) {
		case nil:
			continue
		case map[string]any, []any:
			return fmt.Errorf("%w: %s: key %q must be a scalar", ErrConfigFile, path, key)
		}

		err := flags.Set(key, fmt.Sprint(value))
		if err != nil {
			return fmt.Errorf("%w: %s: %s: %w", ErrConfigFile, path, key, err)
		}
	}

	return nil
}
