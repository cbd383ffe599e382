package benchsuite

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/dimonomid/rocstr/rocstr"
	"github.com/juju/errors"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v2"
)

// InspectCapacities are the capacities Inspect supports.
var InspectCapacities = []int{8, 16, 32, 64, 128, 256}

// Inspection describes the text as held by a RocStr of some capacity.
type Inspection struct {
	Capacity  int    `yaml:"capacity"`
	Text      string `yaml:"text"`
	Truncated bool   `yaml:"truncated"`

	Bytes     int `yaml:"bytes"`
	Runes     int `yaml:"runes"`
	Graphemes int `yaml:"graphemes"`
	Width     int `yaml:"width"`
}

// Inspect stores text in a RocStr of every given capacity, and describes
// what each one holds. Lengths are in bytes; runes, graphemes and display
// width are reported for comparison.
func Inspect(text string, capacities []int) ([]Inspection, error) {
	ret := make([]Inspection, 0, len(capacities))

	for _, capacity := range capacities {
		held, err := holdIn(text, capacity)
		if err != nil {
			return nil, errors.Trace(err)
		}

		ret = append(ret, Inspection{
			Capacity:  capacity,
			Text:      held,
			Truncated: held != text,

			Bytes:     len(held),
			Runes:     utf8.RuneCountInString(held),
			Graphemes: uniseg.GraphemeClusterCount(held),
			Width:     runewidth.StringWidth(held),
		})
	}

	return ret, nil
}

func holdIn(text string, capacity int) (string, error) {
	switch capacity {
	case 8:
		return rocstr.From[[8]byte](text).String(), nil
	case 16:
		return rocstr.From[[16]byte](text).String(), nil
	case 32:
		return rocstr.From[[32]byte](text).String(), nil
	case 64:
		return rocstr.From[[64]byte](text).String(), nil
	case 128:
		return rocstr.From[[128]byte](text).String(), nil
	case 256:
		return rocstr.From[[256]byte](text).String(), nil
	}

	return "", errors.NotSupportedf("capacity %d (supported: %v)", capacity, InspectCapacities)
}

var inspectionColumns = []string{"CAP", "BYTES", "RUNES", "GRAPHEMES", "WIDTH", "TEXT"}

// WriteInspections writes the inspections as an aligned text table.
func WriteInspections(w io.Writer, inspections []Inspection) error {
	rows := make([][]string, 0, len(inspections))
	for _, in := range inspections {
		text := strconv.Quote(in.Text)
		if in.Truncated {
			text += " (truncated)"
		}

		rows = append(rows, []string{
			strconv.Itoa(in.Capacity),
			strconv.Itoa(in.Bytes),
			strconv.Itoa(in.Runes),
			strconv.Itoa(in.Graphemes),
			strconv.Itoa(in.Width),
			text,
		})
	}

	return errors.Trace(writeTable(w, inspectionColumns, rows))
}

func WriteInspectionsYAML(w io.Writer, inspections []Inspection) error {
	data, err := yaml.Marshal(inspections)
	if err != nil {
		return errors.Annotatef(err, "marshaling inspections")
	}

	if _, err := w.Write(data); err != nil {
		return errors.Trace(err)
	}

	return nil
}
