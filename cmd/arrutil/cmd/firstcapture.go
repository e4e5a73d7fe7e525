package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/textutil"
)

var firstCaptureCmd = &cobra.Command{
	Use:   "first-capture <pattern> <subject>",
	Short: "Print the first capture group of a delimited regex",
	Long: `First-capture matches subject against a delimited pattern such as
/foo(bar)/i and prints the text of the first capture group. A pattern with
no capture group taking part in the match reports no match. A group that
takes part but captures nothing prints an empty string.

Supported modifiers: i (ignore case), m (multiline), s (dot matches newline),
x (ignore pattern whitespace). Matching is bounded by regex.timeout.

Example:
  arrutil first-capture '/id=(\d+)/' 'user id=42'`,
	Args: cobra.ExactArgs(2),
	RunE: runFirstCapture,
}

func init() {
	firstCaptureCmd.Flags().BoolVar(&exitCode, "exit-code", false,
		"Exit with status 1 when nothing matches")
	rootCmd.AddCommand(firstCaptureCmd)
}

func runFirstCapture(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	m := textutil.NewMatcher(s.cfg.Regex.Timeout)
	capture, found, err := m.FirstCapture(args[0], args[1])
	if err != nil {
		return err
	}
	s.log.Debugw("Pattern matched", "pattern", args[0], "found", found, "timeout", m.Timeout())

	if !found {
		return s.miss("no match")
	}
	return s.write(capture)
}
