package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mathsex/pkg/core/version"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if a.settings.OutputFormat == "json" {
				return a.renderer(cmd.OutOrStdout()).RenderJSON(info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mathsex v%s\n", info.Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", info.OS, info.Arch)
			return nil
		},
	}
}
