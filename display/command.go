package display

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/errors"
)

// ShouldOutputJSON reports whether a command should emit JSON instead of
// human-readable output. A --json flag set on the command itself wins over
// the root persistent flag.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}

// OutputJSON marshals v with MarshalJSON and prints it on stdout.
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	fmt.Println(string(data))
	return nil
}
