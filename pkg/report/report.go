package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fbprobe/pkg/probe"
	"fbprobe/pkg/ui"
)

// separatorWidth is the width of the visual break between page reports
const separatorWidth = 60

// Write serializes a batch of probe results as a JSON array with
// two-space indentation. Downstream consumers parse this output, so the
// shape and indentation are part of the contract.
func Write(w io.Writer, results []*probe.Result) error {
	// A nil batch still serializes as an empty array
	if results == nil {
		results = []*probe.Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// PrintSummary prints the statistics block for one result on the
// diagnostic stream
func PrintSummary(result *probe.Result) {
	ui.PrintHighlight("\nStatistics:")
	ui.PrintPlain(fmt.Sprintf("  Total posts: %d", result.Stats.TotalPosts))
	ui.PrintPlain(fmt.Sprintf("  Multi-image posts: %d", result.Stats.PostsWithMultipleImages))
	ui.PrintPlain(fmt.Sprintf("  Single-image posts: %d", result.Stats.PostsWithSingleImage))
	ui.PrintPlain(fmt.Sprintf("  No images: %d", result.Stats.PostsWithNoImages))
}

// PrintSeparator prints a visual break between page reports on the
// diagnostic stream
func PrintSeparator() {
	ui.PrintPlain("\n" + strings.Repeat("=", separatorWidth) + "\n")
}
