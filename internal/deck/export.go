package deck

import (
	"strconv"
	"strings"
)

// ExportText renders a deck list for sharing: optional name header, one line
// per entry in display order, then the deck code.
func ExportText(name string, entries []Entry) string {
	lines := []string{}
	if name != "" {
		lines = append(lines, "# "+name)
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortForDisplay(sorted)
	for _, e := range sorted {
		lines = append(lines, strconv.Itoa(e.Count)+"x "+e.Card.Name)
	}
	lines = append(lines, "code: "+Encode(sorted))
	return strings.Join(lines, "\n")
}
