package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the suite version.
const Version = "1.0.0"

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show webapps version",
		Run:   version,
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

func version(cmd *cobra.Command, args []string) {
	fmt.Printf("webapps version %v\n", Version)
}
