package dirindex_test

import (
	"testing"

	"github.com/srashe/dirindex"
	"github.com/stretchr/testify/assert"
)

func dirEntry(name string) dirindex.Entry {
	return dirindex.Entry{Name: name, Meta: &dirindex.FileMeta{IsDir: true}}
}

func fileEntry(name string) dirindex.Entry {
	return dirindex.Entry{Name: name, Meta: &dirindex.FileMeta{}}
}

func names(entries []dirindex.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortEntries(t *testing.T) {
	t.Run("parent link always first", func(t *testing.T) {
		entries := []dirindex.Entry{
			fileEntry("aaa.txt"),
			dirEntry("bbb"),
			dirEntry(".."),
		}
		dirindex.SortEntries(entries)
		assert.Equal(t, []string{"..", "bbb", "aaa.txt"}, names(entries))
	})

	t.Run("directories before files", func(t *testing.T) {
		entries := []dirindex.Entry{
			fileEntry("alpha.txt"),
			dirEntry("zeta"),
			fileEntry("beta.txt"),
			dirEntry("media"),
		}
		dirindex.SortEntries(entries)
		assert.Equal(t, []string{"media", "zeta", "alpha.txt", "beta.txt"}, names(entries))
	})

	t.Run("names compare case-insensitively", func(t *testing.T) {
		entries := []dirindex.Entry{
			fileEntry("banana.txt"),
			fileEntry("APPLE.txt"),
			fileEntry("Cherry.txt"),
		}
		dirindex.SortEntries(entries)
		assert.Equal(t, []string{"APPLE.txt", "banana.txt", "Cherry.txt"}, names(entries))
	})

	t.Run("locale rules group accented names", func(t *testing.T) {
		entries := []dirindex.Entry{
			fileEntry("zebra.txt"),
			fileEntry("éclair.txt"),
			fileEntry("apple.txt"),
		}
		dirindex.SortEntries(entries)
		assert.Equal(t, []string{"apple.txt", "éclair.txt", "zebra.txt"}, names(entries))
	})

	t.Run("missing metadata sorts as file", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "ghost"},
			dirEntry("solid"),
		}
		dirindex.SortEntries(entries)
		assert.Equal(t, []string{"solid", "ghost"}, names(entries))
	})

	t.Run("equal names keep incoming order", func(t *testing.T) {
		first := fileEntry("same.txt")
		first.Meta.Size = 1
		second := fileEntry("same.txt")
		second.Meta.Size = 2

		entries := []dirindex.Entry{first, second}
		dirindex.SortEntries(entries)
		assert.Equal(t, int64(1), entries[0].Meta.Size)
		assert.Equal(t, int64(2), entries[1].Meta.Size)
	})

	t.Run("empty and single element safe", func(t *testing.T) {
		dirindex.SortEntries(nil)

		single := []dirindex.Entry{fileEntry("only.txt")}
		dirindex.SortEntries(single)
		assert.Equal(t, []string{"only.txt"}, names(single))
	})
}
