// Package render writes problem reports as go-pretty tables or plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/lvlalg/internal/problem"
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Report writes rep to w in the given format. Unknown formats fall back to
// the table layout.
func Report(w io.Writer, rep *problem.Report, format string) error {
	if format == FormatPlain {
		return plain(w, rep)
	}

	return tabular(w, rep)
}

// Title is the one-line heading used by both formats.
func Title(rep *problem.Report) string {
	return fmt.Sprintf("%s: %dx%d over %s", rep.Name, rep.Rows, rep.Cols, rep.Field)
}

func tabular(w io.Writer, rep *problem.Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(Title(rep))
	t.AppendHeader(table.Row{"op", "result"})
	for _, s := range rep.Sections {
		t.AppendRow(table.Row{s.Op, cell(s)})
		t.AppendSeparator()
	}
	t.Render()

	return nil
}

func plain(w io.Writer, rep *problem.Report) error {
	if _, err := fmt.Fprintln(w, "== "+Title(rep)+" =="); err != nil {
		return err
	}
	for _, s := range rep.Sections {
		head := s.Op + ":"
		if line := strings.TrimSpace(s.Value + " " + s.Note); line != "" {
			head += " " + line
		}
		if _, err := fmt.Fprintln(w, head); err != nil {
			return err
		}
		if len(s.Matrix) > 0 {
			if _, err := fmt.Fprintln(w, Matrix(s.Matrix)); err != nil {
				return err
			}
		}
	}

	return nil
}

func cell(s problem.Section) string {
	parts := make([]string, 0, 3)
	if s.Value != "" {
		parts = append(parts, s.Value)
	}
	if s.Note != "" {
		parts = append(parts, s.Note)
	}
	if len(s.Matrix) > 0 {
		parts = append(parts, Matrix(s.Matrix))
	}

	return strings.Join(parts, "\n")
}

// Matrix lays out cells as bracketed rows with right-aligned columns:
//
//	[ 1 -1/2]
//	[10    3]
func Matrix(cells [][]string) string {
	var widths []int
	for _, row := range cells {
		for j, c := range row {
			if j == len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], text.RuneWidthWithoutEscSequences(c))
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text.AlignRight.Apply(c, widths[j]))
		}
		b.WriteByte(']')
	}

	return b.String()
}
