/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-hand/script"
)

var simulateQuiet bool

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario_file]",
	Short: "Run a pointer scenario against a headless hand",
	Long: `Run a scenario of pointer and timing commands against a hand without
opening a window, then print the slot occupancy after every step.

Example scenario:
  cards 3
  press 0
  move 10 0
  expect order 1 0 2
  release`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read scenario: %w", err)
		}
		logger := loggerFromContext(cmd.Context())
		r := script.NewRunner(configFromContext(cmd.Context()), logger)
		runErr := r.Run(args[0], string(src))
		if !simulateQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), script.Report(r.Steps))
		}
		if runErr != nil {
			return runErr
		}
		logger.Info("scenario passed", "file", args[0], "steps", len(r.Steps))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().BoolVarP(&simulateQuiet, "quiet", "q", false, "Only report failures")
}
