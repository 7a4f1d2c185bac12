package commands

import (
	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/display"
)

// GetCmd reads the values stored in regions.
var GetCmd = &cobra.Command{
	Use:   "get <space> <key> <region>...",
	Short: "Read the values stored in regions",
	Long: `Read the values stored under a key in the given regions.

Examples:
  tesseract get weather temp '{"z":2,"x":[1],"y":[3]}'
  tesseract get weather temp '{"z":2,"x":[0,8],"y":[0,8]}' --center --json`,
	Args: cobra.MinimumNArgs(3),
	RunE: runGet,
}

// SelectCmd resolves regions without reading values. Without annotation
// flags the engine returns bare region IDs; with them, annotated records.
var SelectCmd = &cobra.Command{
	Use:   "select <region>...",
	Short: "Resolve matching regions",
	Long: `Resolve the regions matched by a query without reading values.

Without annotation flags the engine returns bare region IDs; --vertex,
--center, and --id-string switch to annotated records.

Examples:
  tesseract select '{"z":2,"x":[0,8],"y":[0,8]}'
  tesseract select '{"z":2,"x":[0,8],"y":[0,8]}' --center --id-string`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

func init() {
	addOutputFlags(GetCmd)
	addOutputFlags(SelectCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	region, err := regionExpr(args[2:])
	if err != nil {
		return err
	}

	return withClient(cmd, func(cl *client.Client) error {
		records, err := cl.Get(args[0], args[1], region, outputOptions(cmd))
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(records)
		}
		display.ValueRecords(records)
		return nil
	})
}

func runSelect(cmd *cobra.Command, args []string) error {
	region, err := regionExpr(args)
	if err != nil {
		return err
	}

	opts := outputOptions(cmd)
	annotated := opts.Vertex || opts.Center || opts.IDString || opts.IDPure

	return withClient(cmd, func(cl *client.Client) error {
		if !annotated {
			ids, err := cl.SelectIDs(region)
			if err != nil {
				return err
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(ids)
			}
			display.IDs(ids)
			return nil
		}

		records, err := cl.Select(region, opts)
		if err != nil {
			return err
		}
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(records)
		}
		display.Records(records)
		return nil
	})
}
