package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokit-go/lokit/pkg/lokit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wrapper version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lokit %s\n", lokit.WrapperVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
