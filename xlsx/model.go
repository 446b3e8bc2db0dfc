package xlsx

import (
	"fmt"
	"strings"

	"github.com/aerissecure/reportsheet/tabular"
)

// Column widths are expressed in characters, the unit spreadsheet
// applications use for column widths.
const (
	minColumnWidth = 8
	maxColumnWidth = 80
	// widthPadding leaves room for the cell margins.
	widthPadding = 2
)

// Workbook is the in-memory form of an XLSX file: its worksheets in order.
type Workbook struct {
	Sheets []tabular.Sheet
}

// First returns the primary worksheet, the only one imports look at.
func (w Workbook) First() (tabular.Sheet, bool) {
	if len(w.Sheets) == 0 {
		return tabular.Sheet{}, false
	}
	return w.Sheets[0], true
}

// Sheet returns the worksheet called name.
func (w Workbook) Sheet(name string) (tabular.Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return tabular.Sheet{}, false
}

func (w Workbook) String() string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return fmt.Sprintf("Sheets: %d [%s]", len(w.Sheets), strings.Join(names, ", "))
}

// columnWidth clamps a content width in runes to a usable column width.
func columnWidth(runes int) float64 {
	w := runes + widthPadding
	if w < minColumnWidth {
		w = minColumnWidth
	}
	if w > maxColumnWidth {
		w = maxColumnWidth
	}
	return float64(w)
}
