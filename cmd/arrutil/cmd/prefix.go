package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jrsinclair/arrutil/pkg/arrayutil"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix <prefix>",
	Short: "Prepend a prefix to every value of a sequence",
	Long: `Prefix reads a sequence of scalars and prints it with prefix prepended
to every element. Numbers and booleans are converted to strings first.

Example:
  echo '["a","b"]' | arrutil prefix pre-`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefix,
}

var prefixKeysCmd = &cobra.Command{
	Use:   "prefix-keys <prefix>",
	Short: "Prepend a prefix to every key of a mapping",
	Long: `Prefix-keys reads a mapping and prints it with prefix prepended to every
key. Values and key order are unchanged.

Example:
  echo '{"a":1,"b":2}' | arrutil prefix-keys x_`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefixKeys,
}

func init() {
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(prefixKeysCmd)
}

func runPrefix(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	out, err := arrayutil.PrefixAny(args[0], doc)
	if err != nil {
		return err
	}
	return s.write(out)
}

func runPrefixKeys(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	out, err := arrayutil.PrefixKeysAny(args[0], doc)
	if err != nil {
		return err
	}
	return s.write(out)
}
