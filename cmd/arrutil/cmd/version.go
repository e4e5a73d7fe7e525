package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the arrutil version, the commit it was built from, and the Go
toolchain and platform. Values not set at build time are taken from the
module and VCS information embedded by the go tool.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	info, _ := debug.ReadBuildInfo()
	version, commit := resolveVersion(Version, Commit, info)

	cmd.Printf("arrutil version %s\n", version)
	cmd.Printf("  Commit: %s\n", commit)
	cmd.Printf("  Go version: %s\n", runtime.Version())
	cmd.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// resolveVersion fills in the dev version and unknown commit from embedded
// build information. Values set through ldflags always win.
func resolveVersion(version, commit string, info *debug.BuildInfo) (string, string) {
	if info == nil {
		return version, commit
	}
	if version == "0.0.1-dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "unknown" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				commit = s.Value
			}
		}
	}
	return version, commit
}
