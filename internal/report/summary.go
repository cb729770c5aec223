package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/autoprobe/internal/types"
)

type summaryRow struct {
	label string
	value int
	total bool
}

// PrintSummary writes the per-version and global counts.
func PrintSummary(w io.Writer, s types.RunSummary) {
	var rows []summaryRow
	for _, v := range s.Requests.Versions() {
		rows = append(rows,
			summaryRow{label: fmt.Sprintf("No. of searches made for %s:", v), value: s.Requests.Get(v)},
			summaryRow{label: fmt.Sprintf("No. of results in %s:", v), value: s.ResultsCount.Get(v)},
		)
	}
	rows = append(rows,
		summaryRow{label: "Total requests:", value: s.TotalRequests, total: true},
		summaryRow{label: "Total unique records:", value: s.TotalUniqueRecords, total: true},
	)

	width := 0
	for _, r := range rows {
		if n := runewidth.StringWidth(r.label); n > width {
			width = n
		}
	}

	printHeader(w, "Summary")
	for _, r := range rows {
		label := runewidth.FillRight(r.label, width)
		if r.total {
			fmt.Fprintf(w, "  %s %s\n", color.Bold.Sprint(label), color.Green.Sprint(r.value))
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", label, color.Cyan.Sprint(r.value))
	}
}

// printHeader prints a boxed section title
func printHeader(w io.Writer, title string) {
	width := runewidth.StringWidth(title) + 4
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}
