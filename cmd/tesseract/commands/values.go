package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

var (
	valueIntFlag  int64
	valueTextFlag string
	valueBoolFlag bool
	putUpdateFlag bool
)

// PutCmd stores a value into regions that do not hold one yet.
var PutCmd = &cobra.Command{
	Use:   "put <space> <key> <region>...",
	Short: "Store a value in unoccupied regions",
	Long: `Store a value in regions that do not hold one yet.

The engine rejects a put when a target region already stores a value for
the key; --update retries the write as an in-place update instead.

Examples:
  tesseract put weather temp '{"z":2,"x":[1],"y":[3]}' --int 25
  tesseract put weather sky '{"z":2,"x":[1],"y":[3]}' --text sunny --update`,
	Args: cobra.MinimumNArgs(3),
	RunE: runPut,
}

// SetCmd overwrites the value in regions that already hold one.
var SetCmd = &cobra.Command{
	Use:   "set <space> <key> <region>...",
	Short: "Update the value of occupied regions",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runSet,
}

// DeleteCmd removes stored values from regions.
var DeleteCmd = &cobra.Command{
	Use:   "delete <space> <key> <region>...",
	Short: "Delete the values stored in regions",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runDelete,
}

func init() {
	addValueFlags(PutCmd)
	addValueFlags(SetCmd)
	PutCmd.Flags().BoolVar(&putUpdateFlag, "update", false, "Update regions that already hold a value")
}

func addValueFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&valueIntFlag, "int", 0, "INT value to store")
	cmd.Flags().StringVar(&valueTextFlag, "text", "", "TEXT value to store")
	cmd.Flags().BoolVar(&valueBoolFlag, "bool", false, "BOOLEAN value to store")
}

// valueFromFlags builds the typed value from whichever value flag was set.
func valueFromFlags(cmd *cobra.Command) (spacetime.Value, error) {
	var (
		value spacetime.Value
		set   int
	)
	if cmd.Flags().Changed("int") {
		value = spacetime.IntValue(valueIntFlag)
		set++
	}
	if cmd.Flags().Changed("text") {
		value = spacetime.TextValue(valueTextFlag)
		set++
	}
	if cmd.Flags().Changed("bool") {
		value = spacetime.BoolValue(valueBoolFlag)
		set++
	}
	if set != 1 {
		return spacetime.Value{}, errors.New("exactly one of --int, --text, or --bool is required")
	}
	return value, nil
}

func runPut(cmd *cobra.Command, args []string) error {
	value, err := valueFromFlags(cmd)
	if err != nil {
		return err
	}
	region, err := regionExpr(args[2:])
	if err != nil {
		return err
	}

	return withClient(cmd, func(cl *client.Client) error {
		space, key := args[0], args[1]
		if putUpdateFlag {
			err = cl.PutOrSet(space, key, region, value)
		} else {
			err = cl.Put(space, key, region, value)
		}
		if err != nil {
			return err
		}
		pterm.Success.Printf("Value stored: %s/%s = %s\n", space, key, value)
		return nil
	})
}

func runSet(cmd *cobra.Command, args []string) error {
	value, err := valueFromFlags(cmd)
	if err != nil {
		return err
	}
	region, err := regionExpr(args[2:])
	if err != nil {
		return err
	}

	return withClient(cmd, func(cl *client.Client) error {
		space, key := args[0], args[1]
		if err := cl.Set(space, key, region, value); err != nil {
			return err
		}
		pterm.Success.Printf("Value updated: %s/%s = %s\n", space, key, value)
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	region, err := regionExpr(args[2:])
	if err != nil {
		return err
	}

	return withClient(cmd, func(cl *client.Client) error {
		space, key := args[0], args[1]
		if err := cl.Delete(space, key, region); err != nil {
			return err
		}
		pterm.Success.Printf("Values deleted: %s/%s\n", space, key)
		return nil
	})
}
