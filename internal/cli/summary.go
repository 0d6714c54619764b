package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abarbosa/extrato/internal/service"
)

// lowConfidenceBar is the score below which a classification is flagged for
// the user to review and correct.
const lowConfidenceBar = 0.7

// RenderSummary formats the outcome of a batch classification run: volume,
// which cascade stage answered, and how many results deserve a correction.
func RenderSummary(result *service.BatchResult) string {
	bySource := make(map[string]int)
	lowConfidence := 0
	for i := range result.Processed {
		trail := result.Processed[i].SourceTrail()
		if trail == "" {
			trail = "none"
		}
		bySource[trail]++
		if result.Processed[i].Confidence < lowConfidenceBar {
			lowConfidence++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  • Rows processed: %d\n", len(result.Processed))
	fmt.Fprintf(&b, "  • Rows inserted: %d", result.Inserted)
	if dupes := len(result.Processed) - result.Inserted; dupes > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf(" (%d duplicates skipped)", dupes)))
	}
	b.WriteString("\n")
	trails := make([]string, 0, len(bySource))
	for trail := range bySource {
		trails = append(trails, trail)
	}
	sort.Strings(trails)
	for _, trail := range trails {
		fmt.Fprintf(&b, "  • via %s: %d\n", trail, bySource[trail])
	}
	if lowConfidence > 0 {
		b.WriteString(WarningStyle.Render(
			fmt.Sprintf("  • %d low-confidence rows, review with 'extrato correct'", lowConfidence)))
		b.WriteString("\n")
	}

	return RenderBox("Classification Complete", b.String())
}
