package display

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Names prints a list of space or key names with a count header. The label
// names what is being listed ("spaces", "keys").
func Names(label string, names []string) {
	if len(names) == 0 {
		pterm.Info.Printf("No %s found\n", label)
		return
	}

	pterm.Printf("%s %s\n", pterm.White(label), pterm.Gray(fmt.Sprintf("(%d)", len(names))))
	for _, name := range names {
		pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightGreen(name))
	}
}

// IDs prints matched region IDs from a Select reply.
func IDs(ids []spacetime.ID) {
	if len(ids) == 0 {
		pterm.Info.Println("No regions matched")
		return
	}

	pterm.Printf("%s %s\n", pterm.White("regions"), pterm.Gray(fmt.Sprintf("(%d)", len(ids))))
	for _, id := range ids {
		pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightMagenta(id.String()))
	}
}

// Records prints matched regions with their requested geometry annotations.
func Records(records []spacetime.Record) {
	if len(records) == 0 {
		pterm.Info.Println("No regions matched")
		return
	}

	pterm.Printf("%s %s\n", pterm.White("regions"), pterm.Gray(fmt.Sprintf("(%d)", len(records))))
	for _, rec := range records {
		printRecord(rec)
	}
}

// ValueRecords prints matched regions together with their stored values.
func ValueRecords(records []spacetime.ValueRecord) {
	if len(records) == 0 {
		pterm.Info.Println("No values matched")
		return
	}

	pterm.Printf("%s %s\n", pterm.White("values"), pterm.Gray(fmt.Sprintf("(%d)", len(records))))
	for _, rec := range records {
		printRecord(rec.Record)
		if rec.Value != nil {
			pterm.Printf("      %s %s\n", pterm.Gray("value"), pterm.LightGreen(rec.Value.String()))
		}
	}
}

func printRecord(rec spacetime.Record) {
	pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightMagenta(rec.ID.String()))
	if rec.IDString != "" {
		pterm.Printf("      %s %s\n", pterm.Gray("id"), pterm.Yellow(rec.IDString))
	}
	if rec.Center != nil {
		pterm.Printf("      %s %s\n", pterm.Gray("center"), pterm.White(formatPoint(*rec.Center)))
	}
	if rec.Vertex != nil {
		for i, p := range rec.Vertex {
			pterm.Printf("      %s %s\n", pterm.Gray(fmt.Sprintf("v%d", i)), pterm.White(formatPoint(p)))
		}
	}
}

func formatPoint(p spacetime.Point) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p[0], p[1], p[2])
}
