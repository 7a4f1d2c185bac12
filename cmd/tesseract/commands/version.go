package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tesseractdb/go-tesseract/client"
	"github.com/tesseractdb/go-tesseract/display"
	"github.com/tesseractdb/go-tesseract/gateway"
	"github.com/tesseractdb/go-tesseract/version"
)

// VersionCmd reports client build info and, when an engine module is
// configured, the engine's version and the compatibility verdict.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client build info and engine compatibility",
	RunE:  runVersion,
}

type engineReport struct {
	Version    string `json:"version,omitempty"`
	Compatible bool   `json:"compatible"`
	MinVersion string `json:"min_version"`
	MaxVersion string `json:"max_version"`
}

type versionReport struct {
	Client version.Info  `json:"client"`
	Engine *engineReport `json:"engine,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	report := versionReport{Client: version.Get()}

	if _, err := enginePath(cmd); err == nil {
		err = withClient(cmd, func(cl *client.Client) error {
			report.Engine = &engineReport{
				Version:    cl.EngineVersion(),
				Compatible: cl.Compatible(),
				MinVersion: gateway.MinEngineVersion,
				MaxVersion: gateway.MaxEngineVersion,
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(report)
	}

	info := report.Client
	fmt.Println(info.String())
	fmt.Printf("Platform: %s\n", info.Platform)
	fmt.Printf("Go: %s\n", info.GoVersion)

	switch {
	case report.Engine == nil:
		fmt.Println("Engine: not configured")
	case report.Engine.Version == "":
		fmt.Printf("Engine: version unknown (supported %s to %s)\n",
			report.Engine.MinVersion, report.Engine.MaxVersion)
	case report.Engine.Compatible:
		fmt.Printf("Engine: %s (compatible, supported %s to %s)\n",
			report.Engine.Version, report.Engine.MinVersion, report.Engine.MaxVersion)
	default:
		fmt.Printf("Engine: %s (UNSUPPORTED, supported %s to %s)\n",
			report.Engine.Version, report.Engine.MinVersion, report.Engine.MaxVersion)
	}
	return nil
}
