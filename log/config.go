package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names registered by [Config.RegisterFlags].
const (
	FlagLevel  = "log-level"
	FlagFormat = "log-format"
)

// Config is the logging section of a command line: a level and a format,
// both kept as the raw strings the user typed until [Config.NewHandler]
// parses them.
type Config struct {
	Level  string
	Format string
}

// NewConfig returns a Config for info-level text output.
func NewConfig() *Config {
	return &Config{
		Level:  string(LevelInfo),
		Format: string(FormatText),
	}
}

// RegisterFlags binds --log-level and --log-format to c.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, FlagLevel, c.Level,
		"minimum severity to print: "+strings.Join(GetAllLevelStrings(), ", "))
	flags.StringVar(&c.Format, FlagFormat, c.Format,
		"log line encoding: "+strings.Join(GetAllFormatStrings(), ", "))
}

// RegisterCompletions offers the known levels and formats as completions.
// The flags must already be registered on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		FlagLevel:  GetAllLevelStrings(),
		FlagFormat: GetAllFormatStrings(),
	}

	for name, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("completing --%s: %w", name, err)
		}
	}

	return nil
}

// NewHandler parses the configured level and format and returns a handler
// writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
