// Package commands implements the tesseract CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/config"
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/gateway"
	"github.com/tesseractdb/go-tesseract/spacetime"
	"github.com/tesseractdb/go-tesseract/wasm"
)

// enginePath resolves the engine module location: the --engine flag wins,
// then engine.module from the user config.
func enginePath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Root().PersistentFlags().GetString("engine"); path != "" {
		return path, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Engine.Module != "" {
		return cfg.Engine.Module, nil
	}

	return "", errors.Newf("no engine module configured: pass --engine or set engine.module in %s", config.UserConfigPath())
}

// withClient loads the engine module, connects a client, runs fn, and tears
// the engine down again.
func withClient(cmd *cobra.Command, fn func(*client.Client) error) error {
	path, err := enginePath(cmd)
	if err != nil {
		return err
	}

	engine, err := wasm.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer engine.Close()

	var opts []gateway.Option
	if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
		opts = append(opts, gateway.WithDebug(true))
	}

	cl, err := client.New(engine, opts...)
	if err != nil {
		return err
	}

	return fn(cl)
}

// parseRegion decodes one compact-notation region argument.
func parseRegion(arg string) (spacetime.ID, error) {
	var id spacetime.ID
	if err := id.UnmarshalJSON([]byte(arg)); err != nil {
		return spacetime.ID{}, err
	}
	return id, nil
}

// regionExpr builds the query expression from the region arguments: a
// single region stands alone, several regions are unioned.
func regionExpr(args []string) (spacetime.Expr, error) {
	exprs := make([]spacetime.Expr, 0, len(args))
	for _, arg := range args {
		id, err := parseRegion(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "region %s", arg)
		}
		exprs = append(exprs, id)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return spacetime.OrOf(exprs...), nil
}

// outputOptions reads the geometry annotation flags shared by get and select.
func outputOptions(cmd *cobra.Command) spacetime.OutputOptions {
	vertex, _ := cmd.Flags().GetBool("vertex")
	center, _ := cmd.Flags().GetBool("center")
	idString, _ := cmd.Flags().GetBool("id-string")
	idPure, _ := cmd.Flags().GetBool("id-pure")
	return spacetime.OutputOptions{Vertex: vertex, Center: center, IDString: idString, IDPure: idPure}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("vertex", false, "Include the eight corner points of each region")
	cmd.Flags().Bool("center", false, "Include the center point of each region")
	cmd.Flags().Bool("id-string", false, "Include the engine's text rendering of each ID")
	cmd.Flags().Bool("id-pure", false, "Normalize result IDs into non-overlapping regions")
}
