package benchsuite

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v2"
)

var resultColumns = []string{"CASE", "N", "NS/OP", "B/OP", "ALLOCS/OP"}

// WriteTable writes the results as an aligned text table.
func WriteTable(w io.Writer, results []Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.N),
			strconv.FormatFloat(r.NsPerOp, 'f', 2, 64),
			strconv.FormatInt(r.BytesPerOp, 10),
			strconv.FormatInt(r.AllocsPerOp, 10),
		})
	}

	return errors.Trace(writeTable(w, resultColumns, rows))
}

// WriteYAML writes the results as a YAML list.
func WriteYAML(w io.Writer, results []Result) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return errors.Annotatef(err, "marshaling results")
	}

	if _, err := w.Write(data); err != nil {
		return errors.Trace(err)
	}

	return nil
}

// writeTable pads every cell to the display width of its column, so that
// wide characters in the cells don't break the alignment.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range append([][]string{header}, rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}

			cells[i] = runewidth.FillRight(cell, widths[i])
		}

		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}
