package explorer

import (
	"strings"

	"golang.org/x/text/cases"
)

// FindRow returns the index of the first row whose name starts with pattern,
// or failing that the first row whose name contains it. Matching is caseless.
// It returns -1 when nothing matches or the pattern is empty.
func FindRow(rows []Row, pattern string) int {
	if pattern == "" {
		return -1
	}
	fold := cases.Fold()
	pattern = fold.String(pattern)
	firstContains := -1
	for i, row := range rows {
		name := fold.String(row.Name())
		if strings.HasPrefix(name, pattern) {
			return i
		}
		if firstContains < 0 && strings.Contains(name, pattern) {
			firstContains = i
		}
	}
	return firstContains
}
