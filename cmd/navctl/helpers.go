package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
)

// loadTable resolves the routing table from the --table flag, falling
// back to the built-in default.
func loadTable(cmd *cobra.Command) (*deeplink.Table, error) {
	path, _ := cmd.Flags().GetString("table")
	if path == "" {
		return deeplink.DefaultTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routing table: %w", err)
	}
	defer f.Close()

	return deeplink.LoadTable(f)
}
