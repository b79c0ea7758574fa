package dirindex

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortEntries orders entries for display: the parent link first, then
// directories, then files, with names compared case-insensitively under
// locale collation rules. The sort is stable, so entries that compare equal
// keep their incoming order.
//
// Entries without metadata sort as files.
func SortEntries(entries []Entry) {
	// collate.Collator is not safe for concurrent use; build one per sort.
	col := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.Name == ".." || b.Name == ".." {
			return a.Name == ".." && b.Name != ".."
		}

		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}

		return col.CompareString(a.Name, b.Name) < 0
	})
}
