package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

var pluckCmd = &cobra.Command{
	Use:   "pluck <key>",
	Short: "Collect one field from every record of a sequence",
	Long: `Pluck reads a sequence of records and prints the values stored under
key, in order. Records without the key are skipped. Input that is not a
sequence of records yields an empty sequence.

Example:
  echo '[{"id":1},{"id":2},{"name":"x"}]' | arrutil pluck id`,
	Args: cobra.ExactArgs(1),
	RunE: runPluck,
}

func init() {
	rootCmd.AddCommand(pluckCmd)
}

func runPluck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	values := arrayutil.PluckAny(args[0], doc)
	s.log.Debugw("Plucked field", "key", args[0], "records", size(doc), "values", len(values))
	return s.write(values)
}
