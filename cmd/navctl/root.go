package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navctl",
	Short: "navctl inspects and serves the navigation authorization engine",
	Long:  `navctl resolves deep links, explains routing decisions and serves the debug API of the CyberVPN navigation core.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the navctl config file")
	rootCmd.PersistentFlags().String("table", "", "Path to a routing table YAML file (defaults to the built-in table)")
}
