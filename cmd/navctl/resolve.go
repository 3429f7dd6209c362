package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <uri>",
	Short: "Interpret a deep-link URI",
	Long:  `Parses a URI against the routing table and prints what the app would do with it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}

		result := deeplink.NewInterpreter(table).Parse(args[0])
		switch result.Kind {
		case domain.DeepLinkRoute:
			fmt.Printf("route     %s\n", result.Route.ID)
			fmt.Printf("path      %s\n", result.Route.Path)
			for name, value := range result.Route.Params {
				fmt.Printf("param     %s=%s\n", name, value)
			}
		case domain.DeepLinkAuthCallback:
			fmt.Printf("callback  provider=%s\n", result.Callback.Provider)
			if result.Callback.Payload != "" {
				fmt.Printf("payload   %s\n", result.Callback.Payload)
			}
		case domain.DeepLinkUnrecognized:
			fmt.Println("unrecognized (ignored by the app)")
		default:
			fmt.Println("not a deep link")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
