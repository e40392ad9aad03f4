package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"cluttercutter/internal/scan"
)

const resultsDisclaimer = "Warning: This tool only checks for references in other Unity assets by " +
	"comparing GUIDs. Do NOT blindly trust the results, as things that are not " +
	"referenced in other assets but only referenced via code (classes, shaders, " +
	"resources being loaded via code, etc.) WILL show up as being unused! Double " +
	"check everything and make backups before deleting stuff!"

// printReport renders the human-readable results: a table of unused assets,
// summary counters, and the false-positive disclaimer.
func printReport(w io.Writer, report *scan.Report) {
	fmt.Fprintf(w, "\n%s\n\n", highlight("Analysis Complete!"))

	if len(report.Unused) == 0 {
		fmt.Fprintln(w, highlight("No unused assets found! Your project is clean!"))
		return
	}

	rows := make([][2]string, 0, len(report.Unused))
	for _, asset := range report.Unused {
		rows = append(rows, [2]string{asset.RelPath, humanize.Bytes(uint64(asset.SizeBytes))})
	}
	fmt.Fprintln(w, renderAssetTable(rows))

	fmt.Fprintf(w, "\n%s\n", highlight("Summary:"))
	fmt.Fprintf(w, "- Found %s unused assets out of %s total assets\n",
		alertColor.Sprintf("%d", len(report.Unused)), highlight("%d", report.IndexCount))
	fmt.Fprintf(w, "- Potential savings: %s\n", alertColor.Sprint(humanize.Bytes(uint64(report.TotalSizeBytes()))))

	fmt.Fprintf(w, "\n%s\n", alertColor.Sprint(resultsDisclaimer))
}

// writeJSONReport emits the machine-readable report. The disclaimer travels
// with the payload so scripted consumers see it too.
func writeJSONReport(w io.Writer, report *scan.Report) error {
	payload := struct {
		*scan.Report
		Disclaimer string `json:"disclaimer"`
	}{Report: report, Disclaimer: resultsDisclaimer}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
