package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/internal/config"
	"github.com/jrsinclair/arrutil/internal/document"
	"github.com/jrsinclair/arrutil/internal/logger"
)

// session carries the loaded configuration and logger for one command run.
type session struct {
	cmd *cobra.Command
	cfg *config.Config
	log *logger.Logger
}

// newSession loads and validates configuration, applies CLI overrides and
// builds the command logger.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.OutputFormat, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var log *logger.Logger
	switch cfg.Logging.Output {
	case "", "stderr":
		log = logger.NewWithWriter(&cfg.Logging, cmd.ErrOrStderr())
	default:
		log, err = logger.New(&cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	color.Enable = cfg.Output.Color

	log = log.WithCommand(cmd.Name()).WithFields(map[string]interface{}{
		"input":  inputPath,
		"output": cfg.Output.Format,
	})

	return &session{cmd: cmd, cfg: cfg, log: log}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// readRaw returns the bytes of the --input file, or stdin for "-".
func (s *session) readRaw() ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		data, err := io.ReadAll(s.cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(appFs, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// readDocument decodes the input as a JSON or YAML document.
func (s *session) readDocument() (any, error) {
	data, err := s.readRaw()
	if err != nil {
		return nil, err
	}
	doc, err := document.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	s.log.Debugw("Decoded input", "bytes", len(data), "items", size(doc))
	return doc, nil
}

// write encodes v to stdout in the configured output format.
func (s *session) write(v any) error {
	s.log.Debugw("Writing result", "items", size(v))
	if err := document.Encode(s.cmd.OutOrStdout(), s.cfg.Output.Format, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// status prints a colored one-line message to stdout.
func (s *session) status(c color.Color, format string, args ...any) {
	fmt.Fprintln(s.cmd.OutOrStdout(), c.Sprintf(format, args...))
}

// miss reports an empty lookup result and maps it to errNoMatch when
// --exit-code is set.
func (s *session) miss(message string) error {
	s.status(color.Yellow, "%s", message)
	if exitCode {
		return errNoMatch
	}
	return nil
}

func size(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case []string:
		return len(x)
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return 0
		}
		return x.Len()
	case nil:
		return 0
	}
	return 1
}
