// Package main is the entry point for the raid planner gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/raid-planner/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "raid-planner",
	Short: "Raid planner gRPC server",
	Long:  `Raid planner tracks gear progress, loot priority and recurring raid schedules for static groups.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
