package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/display"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

var keyTypeFlag string

// KeysCmd groups the key management subcommands.
var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage keys",
	Long: `Manage keys, the typed value slots inside a space.

Every key is created with a value type (int, text, or bool); the engine
rejects values of any other type for that key.

Examples:
  tesseract keys ls weather                      # List keys in a space
  tesseract keys create weather temp --type int  # Create an INT key
  tesseract keys drop weather temp               # Drop a key`,
}

var keysLsCmd = &cobra.Command{
	Use:   "ls <space>",
	Short: "List keys in a space",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysLs,
}

var keysCreateCmd = &cobra.Command{
	Use:   "create <space> <key>",
	Short: "Create a typed key",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeysCreate,
}

var keysDropCmd = &cobra.Command{
	Use:   "drop <space> <key>",
	Short: "Drop a key",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeysDrop,
}

func init() {
	keysCreateCmd.Flags().StringVar(&keyTypeFlag, "type", "", "Value type for the key: int, text, or bool")
	_ = keysCreateCmd.MarkFlagRequired("type")

	KeysCmd.AddCommand(keysLsCmd)
	KeysCmd.AddCommand(keysCreateCmd)
	KeysCmd.AddCommand(keysDropCmd)
}

func runKeysLs(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(cl *client.Client) error {
		names, err := cl.Keys(args[0])
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(names)
		}
		display.Names("keys", names)
		return nil
	})
}

func runKeysCreate(cmd *cobra.Command, args []string) error {
	kind, err := spacetime.ParseValueKind(keyTypeFlag)
	if err != nil {
		return err
	}

	return withClient(cmd, func(cl *client.Client) error {
		if err := cl.CreateKey(args[0], args[1], kind); err != nil {
			return err
		}
		pterm.Success.Printf("Key created: %s/%s (%s)\n", args[0], args[1], kind)
		return nil
	})
}

func runKeysDrop(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(cl *client.Client) error {
		if err := cl.DropKey(args[0], args[1]); err != nil {
			return err
		}
		pterm.Success.Printf("Key dropped: %s/%s\n", args[0], args[1])
		return nil
	})
}
