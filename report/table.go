// Package report renders trial.Report values as terminal tables, YAML or JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/randmst/trial"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var summaryHeaders = []string{"n", "mean", "stddev", "max weight", "retained", "incomplete", "elapsed"}

var trialHeaders = []string{"n", "rep", "weight", "edges", "max weight", "scanned", "retained", "complete", "generate", "solve"}

// WriteTable writes a per-size summary table of rep. With verbose set, a
// second table lists every trial.
func WriteTable(w io.Writer, rep *trial.Report, verbose bool) error {
	if rep == nil {
		return fmt.Errorf("WriteTable: nil report")
	}
	title := fmt.Sprintf("run %s  model=%s threshold=%s reps=%d seed=%d",
		rep.RunID, rep.Model, rep.Threshold, rep.Repetitions, rep.Seed)
	if rep.Dimension > 0 {
		title += fmt.Sprintf(" dim=%d", rep.Dimension)
	}
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}

	incompleteRows := map[int]bool{}
	rows := make([][]string, 0, len(rep.Sizes))
	for i, s := range rep.Sizes {
		if !s.AllComplete {
			incompleteRows[i] = true
		}
		rows = append(rows, []string{
			strconv.Itoa(s.N),
			formatFloat(s.Mean),
			formatFloat(s.StdDev),
			formatFloat(s.MeanMaxWeight),
			strconv.FormatFloat(s.MeanRetained, 'f', 1, 64),
			fmt.Sprintf("%d/%d", s.Incomplete, len(s.Trials)),
			s.Elapsed.String(),
		})
	}
	summary := newTable(summaryHeaders, rows, incompleteRows)
	if _, err := fmt.Fprintln(w, summary.Render()); err != nil {
		return err
	}
	if !verbose {
		_, err := fmt.Fprintf(w, "elapsed %s\n", rep.Elapsed)
		return err
	}

	incompleteRows = map[int]bool{}
	rows = rows[:0]
	for _, s := range rep.Sizes {
		for _, t := range s.Trials {
			if !t.Result.Complete {
				incompleteRows[len(rows)] = true
			}
			rows = append(rows, []string{
				strconv.Itoa(t.N),
				strconv.Itoa(t.Rep),
				formatFloat(t.Result.TotalWeight),
				strconv.Itoa(t.Result.Edges),
				formatFloat(t.Result.MaxWeight),
				strconv.Itoa(t.Result.Scanned),
				strconv.Itoa(t.Retained),
				strconv.FormatBool(t.Result.Complete),
				t.GenerateTime.String(),
				t.SolveTime.String(),
			})
		}
	}
	trials := newTable(trialHeaders, rows, incompleteRows)
	if _, err := fmt.Fprintln(w, trials.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "elapsed %s\n", rep.Elapsed)

	return err
}

// newTable builds a bordered table; rows flagged in warn are highlighted.
func newTable(headers []string, rows [][]string, warn map[int]bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case warn[row]:
				return warnStyle
			default:
				return cellStyle
			}
		})
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	return strconv.FormatFloat(v, 'f', 6, 64)
}
