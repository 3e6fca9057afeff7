// Command asciify converts an image into ASCII art.
//
// The image is resampled to the requested width, converted to grayscale
// and every pixel is replaced by a glyph from a dense to sparse palette.
// The result is written as a text file or rasterized to a PNG.
//
// # Usage
//
//	asciify -i photo.jpg -w 120 -d 10 -f txt -o photo.txt
//	asciify -i photo.jpg -f png --font-size 12
//	asciify -i photo.jpg -o - --fit-terminal
//	asciify palette
//
// When --input, --detail or --format are omitted and stdin is a terminal,
// asciify prompts for them. A YAML file given with --config supplies
// defaults keyed by flag name:
//
//	width: 120
//	detail: 9
//	format: png
//	font-size: 12
//
// Flags set on the command line win over the file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/log"
	"github.com/wbrown/img2ascii/version"
)

// app carries the state of one asciify invocation.
type app struct {
	cfg    *Config
	logCfg *log.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// interactive reports whether missing settings may be prompted for.
	interactive bool
	// termWidth returns the width of the terminal on stdout, if any.
	termWidth func() (int, bool)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		cfg:       NewConfig(),
		logCfg:    log.NewConfig(),
		logger:    slog.New(slog.DiscardHandler),
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		termWidth: func() (int, bool) { return 0, false },
	}
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	a.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	a.termWidth = func() (int, bool) {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return 0, false
		}

		w, _, err := term.GetSize(fd)
		if err != nil || w < 1 {
			return 0, false
		}

		return w, true
	}

	rootCmd := a.newRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asciify [flags]",
		Short: "Convert an image into ASCII art",
		Long: `asciify converts an image into ASCII art. Brightness is mapped onto the
glyphs "@#S%?*+;:,." from dark to light; the detail level sets how many of
them are used. The art is written as text or rendered to a PNG.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	a.cfg.RegisterFlags(rootCmd.Flags())
	a.cfg.RegisterFontFlags(rootCmd.PersistentFlags())
	a.logCfg.RegisterFlags(rootCmd.PersistentFlags())

	err := a.cfg.RegisterCompletions(rootCmd)
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}

	err = a.logCfg.RegisterCompletions(rootCmd)
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(a.newPaletteCmd())

	return rootCmd
}

// setup applies the config file and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg.ConfigFile != "" {
		err := applyConfigFile(a.cfg.ConfigFile, cmd.Flags())
		if err != nil {
			return err
		}
	}

	handler, err := a.logCfg.NewHandler(a.stderr)
	if err != nil {
		return err
	}

	a.logger = slog.New(handler)

	return nil
}

func (a *app) newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the glyph palette with measured ink coverage",
		Long: `palette prints every glyph of the palette with its index and the share of
its cell covered by ink in the selected font. Coverage should fall from
the first glyph to the last.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printPalette()
		},
	}
}

func (a *app) printPalette() error {
	r, err := img2ascii.NewRasterizer(a.cfg.RasterizerOptions()...)
	if err != nil {
		return err
	}

	cellW, cellH := r.CellSize()
	fmt.Fprintf(a.stdout, "cell %dx%d px\n", cellW, cellH)
	fmt.Fprintln(a.stdout, "index  glyph  coverage")

	for i := range img2ascii.PaletteSize {
		g := img2ascii.Glyph(i)

		coverage, err := r.InkCoverage(g)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.stdout, "%5d  %5c  %7.1f%%\n", i, g, coverage*100)
	}

	return nil
}

// run resolves the settings, converts the input and writes the artifact.
func (a *app) run(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg := a.cfg

	var p *prompter
	if a.interactive {
		p = newPrompter(a.stdin, a.stderr)
	}

	if cfg.Input == "" {
		if p == nil {
			return fmt.Errorf("%w: use --%s", ErrMissingInput, flagInput)
		}

		input, err := p.ask("Image path", "")
		if err != nil {
			return err
		}

		if input == "" {
			return ErrMissingInput
		}

		cfg.Input = input
	}

	if p != nil && !flags.Changed(flagDetail) {
		detail, err := p.askInt(
			fmt.Sprintf("Detail level (%d-%d)", img2ascii.MinDetailLevel, img2ascii.MaxDetailLevel),
			cfg.Detail, img2ascii.ValidateDetailLevel)
		if err != nil {
			return err
		}

		cfg.Detail = detail
	}

	if p != nil && !flags.Changed(flagFormat) {
		format, err := p.ask(
			fmt.Sprintf("Output format (%s)", strings.Join(img2ascii.FormatStrings(), ", ")),
			cfg.Format)
		if err != nil {
			return err
		}

		cfg.Format = format
	}

	format, err := img2ascii.ParseFormat(cfg.Format)
	if err != nil {
		a.logger.Warn("unsupported output format",
			slog.String("format", cfg.Format),
			slog.String("using", string(format)))
	}

	interp, err := imageutil.ParseInterpolation(cfg.Interp)
	if err != nil {
		return err
	}

	width := cfg.Width
	if cfg.FitTerminal && !flags.Changed(flagWidth) {
		if w, ok := a.termWidth(); ok {
			width = w
		}
	}

	output := cfg.Output
	if output == "" {
		output = img2ascii.DefaultOutputName(format)
	}

	if output == "-" && format != img2ascii.FormatText {
		return fmt.Errorf("%w: got %s", ErrStdoutFormat, format)
	}

	// Font errors surface before the conversion runs.
	var r *img2ascii.Rasterizer
	if format == img2ascii.FormatPNG {
		r, err = img2ascii.NewRasterizer(cfg.RasterizerOptions()...)
		if err != nil {
			return err
		}
	}

	conv := img2ascii.NewConverter(
		img2ascii.WithTargetWidth(width),
		img2ascii.WithDetailLevel(cfg.Detail),
		img2ascii.WithCellAspect(cfg.CellAspect),
		img2ascii.WithInterpolation(interp),
		img2ascii.WithSharpen(cfg.Sharpen),
		img2ascii.WithLogger(a.logger),
	)

	grid, err := conv.ConvertFile(cfg.Input)
	if err != nil {
		return err
	}

	if output == "-" {
		return img2ascii.WriteText(a.stdout, grid)
	}

	err = img2ascii.SaveArtifact(output, format, grid, r)
	if err != nil {
		return err
	}

	a.logger.Info("wrote artifact",
		slog.String("path", output),
		slog.String("format", string(format)),
		slog.Int("cols", grid.Cols()),
		slog.Int("rows", grid.Rows()))

	return nil
}
