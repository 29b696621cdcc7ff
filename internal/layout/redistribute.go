package layout

import (
	"fmt"

	"github.com/ytget/skeletonne/internal/model"
)

// EqualShare formats the width of one member of an n-element row
func EqualShare(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%.4f%%", 100/float64(n))
}

// Redistribute gives every member of a row an equal share of the width.
//
// With no rowIDs every row present in the list is redistributed; otherwise
// only the named rows are. Rows that have no horizontal members are left
// alone, as are vertical elements and members of other rows.
func Redistribute(elements []model.Element, rowIDs ...string) []model.Element {
	out := model.Clone(elements)

	targets := rowIDs
	if len(targets) == 0 {
		targets = RowIDs(out)
	}

	for _, rowID := range targets {
		if rowID == "" {
			continue
		}
		n := len(RowMembers(out, rowID))
		if n == 0 {
			continue
		}
		share := EqualShare(n)
		for i := range out {
			if out[i].IsHorizontal() && out[i].RowID == rowID {
				out[i].Width = share
			}
		}
	}

	return out
}
