package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2ascii/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: log.LevelError},
		"warn level":       {input: "warn", expected: log.LevelWarn},
		"warning level":    {input: "warning", expected: log.LevelWarn},
		"info level":       {input: "info", expected: log.LevelInfo},
		"debug level":      {input: "debug", expected: log.LevelDebug},
		"case insensitive": {input: "DEBUG", expected: log.LevelDebug},
		"unknown level":    {input: "verbose", expected: "", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"text":    {input: "text", expected: log.FormatText},
		"logfmt":  {input: "logfmt", expected: log.FormatLogfmt},
		"json":    {input: "JSON", expected: log.FormatJSON},
		"unknown": {input: "yaml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format    log.Format
		checkFunc func(*testing.T, []byte)
	}{
		"json": {
			format: log.FormatJSON,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				var entry map[string]any
				require.NoError(t, json.Unmarshal(output, &entry))
				assert.Equal(t, "wrote artifact", entry["msg"])
				assert.Equal(t, "ascii_image.txt", entry["path"])
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				assert.Contains(t, string(output), `msg="wrote artifact"`)
				assert.Contains(t, string(output), "path=ascii_image.txt")
			},
		},
		"text": {
			format: log.FormatText,
			checkFunc: func(t *testing.T, output []byte) {
				t.Helper()

				assert.Contains(t, string(output), "wrote artifact")
				assert.Contains(t, string(output), "ascii_image.txt")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(log.NewHandler(&buf, log.LevelInfo, tc.format))
			logger.Info("wrote artifact", slog.String("path", "ascii_image.txt"))

			tc.checkFunc(t, buf.Bytes())
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := log.NewHandlerFromStrings(&buf, "loud", "json")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogLevel)

	_, err = log.NewHandlerFromStrings(&buf, "info", "xml")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)

	handler, err := log.NewHandlerFromStrings(&buf, "warn", "json")
	require.NoError(t, err)
	assert.NotNil(t, handler)
}

func TestLogLevelFiltering(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level         log.Level
		logFunc       func(*slog.Logger)
		expectMessage bool
	}{
		"debug hidden at info": {
			level:         log.LevelInfo,
			logFunc:       func(l *slog.Logger) { l.Debug("resampling") },
			expectMessage: false,
		},
		"debug shown at debug": {
			level:         log.LevelDebug,
			logFunc:       func(l *slog.Logger) { l.Debug("resampling") },
			expectMessage: true,
		},
		"warn shown at warn": {
			level:         log.LevelWarn,
			logFunc:       func(l *slog.Logger) { l.Warn("resampling") },
			expectMessage: true,
		},
		"info hidden at error": {
			level:         log.LevelError,
			logFunc:       func(l *slog.Logger) { l.Info("resampling") },
			expectMessage: false,
		},
	}

	for name, tc := range tcs {
		for _, format := range []log.Format{log.FormatText, log.FormatLogfmt, log.FormatJSON} {
			t.Run(name+"/"+string(format), func(t *testing.T) {
				t.Parallel()

				var buf bytes.Buffer
				tc.logFunc(slog.New(log.NewHandler(&buf, tc.level, format)))

				if tc.expectMessage {
					assert.Contains(t, buf.String(), "resampling")
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--log-level", "debug", "--log-format", "json"}))
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	var buf bytes.Buffer
	handler, err := cfg.NewHandler(&buf)
	require.NoError(t, err)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(nil))
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	tcs := map[string][]string{
		log.FlagLevel:  log.GetAllLevelStrings(),
		log.FlagFormat: log.GetAllFormatStrings(),
	}

	for flag, expected := range tcs {
		fn, ok := cmd.GetFlagCompletionFunc(flag)
		require.True(t, ok, flag)

		completions, directive := fn(cmd, nil, "")
		assert.Equal(t, expected, completions)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}
