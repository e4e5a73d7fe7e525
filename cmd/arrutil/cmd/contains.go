package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

// exitCode is shared by the lookup commands.
var exitCode bool

var containsCmd = &cobra.Command{
	Use:   "contains <needle>",
	Short: "Report whether a value occurs, ignoring case",
	Long: `Contains prints true when needle matches a string of the input sequence
(or a value of the input mapping) under Unicode case folding, false otherwise.

Example:
  echo '["Apple","Banana"]' | arrutil contains banana --exit-code`,
	Args: cobra.ExactArgs(1),
	RunE: runContains,
}

func init() {
	containsCmd.Flags().BoolVar(&exitCode, "exit-code", false,
		"Exit with status 1 when nothing matches")
	rootCmd.AddCommand(containsCmd)
}

func runContains(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	found, err := arrayutil.ContainsFoldAny(args[0], doc)
	if err != nil {
		return err
	}
	s.log.Debugw("Membership checked", "needle", args[0], "found", found)

	if err := s.write(found); err != nil {
		return err
	}
	if !found && exitCode {
		return errNoMatch
	}
	return nil
}
