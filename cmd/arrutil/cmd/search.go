package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

var searchCmd = &cobra.Command{
	Use:   "search <needle>",
	Short: "Find the index or key of a value, ignoring case",
	Long: `Search prints the index of the first string of the input sequence that
matches needle under Unicode case folding. For a mapping input it prints the
first matching key.

Example:
  echo '{"x":"Apple","y":"banana"}' | arrutil search BANANA`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&exitCode, "exit-code", false,
		"Exit with status 1 when nothing matches")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	pos, found, err := arrayutil.SearchFoldAny(args[0], doc)
	if err != nil {
		return err
	}
	s.log.Debugw("Search finished", "needle", args[0], "found", found)

	if !found {
		return s.miss("not found")
	}
	return s.write(pos)
}
