package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/typespeed/internal/model"
)

// PendingMistakes is shown in place of the mistake count while running.
const PendingMistakes = "-"

// FormatSeconds renders elapsed seconds rounded to a whole number.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%d", int(math.Round(seconds)))
}

// FormatAccuracy renders an accuracy percentage.
func FormatAccuracy(accuracy int) string {
	return fmt.Sprintf("%d%%", accuracy)
}

// ResultRows returns label/value pairs for a results record.
func ResultRows(r model.Results) [][]string {
	return [][]string{
		{"Time (s)", FormatSeconds(r.ElapsedSeconds)},
		{"WPM", fmt.Sprintf("%d", r.WPM)},
		{"Accuracy", FormatAccuracy(r.Accuracy)},
		{"Mistakes", fmt.Sprintf("%d", r.Mistakes)},
	}
}

// ResultLines formats a results record as aligned table lines.
func ResultLines(r model.Results) []string {
	return formatTable([]string{"Metric", "Value"}, ResultRows(r), map[int]bool{1: true})
}

// RenderResults prints a results table.
func RenderResults(w io.Writer, r model.Results) error {
	for _, line := range ResultLines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
