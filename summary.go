package emojiesparser

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/FanaticExplorer/EmojiesParser/metadata"
)

// PrintRunSummary prints the per-server outcomes
// and the run totals to the terminal.
func PrintRunSummary(runSummary *metadata.RunSummary) {
	if len(runSummary.Servers) == 0 {
		color.Yellow("No servers were processed.")
		return
	}

	fmt.Println()
	for _, server := range runSummary.Servers {
		if server.FetchError != "" {
			color.Red(
				"%s: failed to fetch metadata (%s)",
				server.Server,
				server.FetchError,
			)
			continue
		}

		fmt.Printf(
			"%s: %d downloaded, %d skipped, %d failed\n",
			server.Server,
			server.Downloaded,
			server.Skipped,
			server.Failed,
		)
		for _, failed := range server.FailedAssets {
			color.Red(
				"    %s/%s (%s)",
				failed.Kind,
				failed.Name,
				failed.Url,
			)
		}
	}

	downloaded, skipped, failed := runSummary.Totals()
	fmt.Println()
	color.Green("Total downloaded: %d", downloaded)
	color.Yellow("Total skipped:    %d", skipped)
	if failed > 0 {
		color.Red("Total failed:     %d", failed)
	} else {
		color.Green("Total failed:     0")
	}
}
