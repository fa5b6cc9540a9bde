package table

import "fmt"

// IndexPath addresses a logical row as a (section, row) pair. Sections are
// ordered, and rows are ordered within their section.
type IndexPath struct {
	Section int
	Row     int
}

// String returns the path as "[section, row]".
func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Row)
}

// Less orders paths by section, then by row.
func (p IndexPath) Less(other IndexPath) bool {
	if p.Section != other.Section {
		return p.Section < other.Section
	}
	return p.Row < other.Row
}
