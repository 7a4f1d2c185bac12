package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/display"
)

// SpacesCmd groups the space management subcommands.
var SpacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Manage spaces",
	Long: `Manage spaces, the engine's named containers of keys and values.

Examples:
  tesseract spaces ls                # List all spaces
  tesseract spaces create weather    # Create a space
  tesseract spaces drop weather      # Drop a space and everything in it`,
}

var spacesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List spaces",
	RunE:  runSpacesLs,
}

var spacesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpacesCreate,
}

var spacesDropCmd = &cobra.Command{
	Use:   "drop <name>",
	Short: "Drop a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpacesDrop,
}

func init() {
	SpacesCmd.AddCommand(spacesLsCmd)
	SpacesCmd.AddCommand(spacesCreateCmd)
	SpacesCmd.AddCommand(spacesDropCmd)
}

func runSpacesLs(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(cl *client.Client) error {
		names, err := cl.Spaces()
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(names)
		}
		display.Names("spaces", names)
		return nil
	})
}

func runSpacesCreate(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(cl *client.Client) error {
		if err := cl.CreateSpace(args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Space created: %s\n", args[0])
		return nil
	})
}

func runSpacesDrop(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(cl *client.Client) error {
		if err := cl.DropSpace(args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Space dropped: %s\n", args[0])
		return nil
	})
}
