package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Collapse nested mappings and sequences into one level",
	Long: `Flatten walks the input depth-first and keeps every leaf under its
innermost key. When a key repeats, the last leaf wins but the key keeps its
first position. Sequence elements are keyed by index.

Example:
  echo '{"a":{"b":1},"c":[2,3]}' | arrutil flatten`,
	Args: cobra.NoArgs,
	RunE: runFlatten,
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	flat, err := arrayutil.Flatten(doc)
	if err != nil {
		return err
	}
	s.log.Debugw("Flattened document", "leaves", flat.Len())
	return s.write(flat)
}
