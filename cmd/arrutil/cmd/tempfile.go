package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/textutil"
)

var tempSuffix string

var tempFileCmd = &cobra.Command{
	Use:   "tempfile",
	Short: "Write the input to a new temporary file",
	Long: `Tempfile copies the raw input into a freshly created, uniquely named
file and prints its path. The directory, name prefix and default suffix come
from the tempfile section of the configuration.

Example:
  echo hello | arrutil tempfile --suffix log`,
	Args: cobra.NoArgs,
	RunE: runTempFile,
}

func init() {
	tempFileCmd.Flags().StringVar(&tempSuffix, "suffix", "",
		"File name suffix (default from config)")
	rootCmd.AddCommand(tempFileCmd)
}

func runTempFile(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	content, err := s.readRaw()
	if err != nil {
		return err
	}

	suffix := tempSuffix
	if suffix == "" {
		suffix = s.cfg.TempFile.Suffix
	}

	w := textutil.NewTempWriter(appFs)
	w.Dir = s.cfg.TempFile.Dir
	if s.cfg.TempFile.Prefix != "" {
		w.Prefix = s.cfg.TempFile.Prefix
	}

	path, err := w.Write(string(content), suffix)
	if err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	s.log.Infow("Temp file written", "path", path, "bytes", len(content))

	s.status(color.Green, "%s", path)
	return nil
}
