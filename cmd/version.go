package cmd

import (
	"fmt"

	internalApp "github.com/haierkeys/light-notes-service/internal/app"

	"github.com/spf13/cobra"
)

func init() {
	var versionCommand = &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s v%s\nGit: %s\nBuildTime: %s\n",
				internalApp.Name,
				internalApp.Version,
				internalApp.GitTag,
				internalApp.BuildTime,
			)
		},
	}
	rootCmd.AddCommand(versionCommand)
}
