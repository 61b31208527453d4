package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/yansilmi/novel-kit/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        exactArgs(0),
	Annotations: map[string]string{skipProjectAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version
		if version == "" {
			version = "dev"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = info.Main.Version
			}
		}

		if plainOutput {
			fmt.Printf("nvk %s (%s, %s)\n", version, buildinfo.Commit, buildinfo.Date)
			return nil
		}
		return respond("version", map[string]interface{}{
			"version": version,
			"commit":  buildinfo.Commit,
			"date":    buildinfo.Date,
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
