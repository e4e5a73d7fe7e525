package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

var filterKeysCmd = &cobra.Command{
	Use:   "filter-keys <key>...",
	Short: "Keep only the named keys of a mapping",
	Long: `Filter-keys reads a mapping and prints the entries whose key is one of
the given keys, in the order they appear in the input. Unknown keys are
ignored.

Example:
  echo '{"a":1,"b":2,"c":3}' | arrutil filter-keys c a`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilterKeys,
}

func init() {
	rootCmd.AddCommand(filterKeysCmd)
}

func runFilterKeys(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	out, err := arrayutil.FilterByKeysAny(doc, args)
	if err != nil {
		return err
	}
	s.log.Debugw("Filtered keys", "allowed", len(args), "kept", out.Len())
	return s.write(out)
}
