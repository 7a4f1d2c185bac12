package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/cmd/tesseract/commands"
	"github.com/tesseractdb/go-tesseract/config"
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tesseract",
	Short: "Client for the Tesseract 4D space-time query engine",
	Long: `tesseract - client for the Tesseract 4D space-time query engine.

Commands talk to an engine WASM module resolved from --engine or from
engine.module in ~/.tesseract/config.toml (env: TESSERACT_ENGINE_MODULE).
Regions are written in compact notation: each axis is "-" (unbounded),
a single cell, or a bounded/half-open interval.

Examples:
  tesseract version                                      # Build info and engine compatibility
  tesseract spaces create weather                        # Create a space
  tesseract keys create weather temp --type int          # Create an INT key
  tesseract put weather temp '{"z":2,"x":[1],"y":[3]}' --int 25
  tesseract get weather temp '{"z":2,"x":[1],"y":[3]}'
  tesseract select '{"z":2,"x":[0,8],"y":[0,8]}' --center`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
		if err := logger.Initialize(cfg.Log.JSON, debug || cfg.Log.Debug); err != nil {
			return errors.Wrap(err, "initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("engine", "", "Path to the engine WASM module")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine requests and responses")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.SpacesCmd)
	rootCmd.AddCommand(commands.KeysCmd)
	rootCmd.AddCommand(commands.PutCmd)
	rootCmd.AddCommand(commands.SetCmd)
	rootCmd.AddCommand(commands.DeleteCmd)
	rootCmd.AddCommand(commands.GetCmd)
	rootCmd.AddCommand(commands.SelectCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
