package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	navigator "github.com/Beep206/CyberVPN-sub013"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the navctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("navctl version %s\n", strings.TrimSpace(navigator.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
