package dirindex

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// Filter decides whether a directory entry appears in a listing. It receives
// the entry name, its index in the candidate list, the full candidate list,
// and the directory being listed. Returning false drops the entry.
type Filter func(name string, index int, names []string, dir string) bool

// FileMeta holds the stat results for one listing entry.
type FileMeta struct {
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Entry pairs an entry name with its metadata. Meta is nil when the entry
// vanished between enumeration and stat.
type Entry struct {
	Name string
	Meta *FileMeta
}

// IsDir reports whether the entry is known to be a directory. Entries with
// missing metadata count as files.
func (e Entry) IsDir() bool {
	return e.Meta != nil && e.Meta.IsDir
}

// Listing is the result of browsing one directory.
type Listing struct {
	// Path is the resolved absolute directory path.
	Path string
	// ShowParent reports whether the directory sits below the root and may
	// link to its parent.
	ShowParent bool
	// Names holds the filtered entry names in lexicographic order.
	Names []string
	// Entries holds the same entries with metadata, in display order.
	Entries []Entry
}

// View selects the layout class emitted on HTML listings.
type View string

const (
	ViewTiles   View = "tiles"
	ViewDetails View = "details"
)

func (v View) IsValid() bool {
	switch v {
	case ViewTiles, ViewDetails:
		return true
	default:
		return false
	}
}

func ParseView(s string) (View, error) {
	view := View(s)
	if !view.IsValid() {
		return "", fmt.Errorf("invalid view: %s (valid views: tiles, details)", s)
	}
	return view, nil
}

// TemplateData carries everything a custom template function needs to
// produce an HTML listing page.
type TemplateData struct {
	// Directory is the request path being listed, percent-decoded.
	Directory string
	// DisplayIcons mirrors Config.Icons.
	DisplayIcons bool
	// FileList holds the entries in display order, parent link included.
	FileList []Entry
	// Path is the resolved absolute directory path.
	Path string
	// Style is the stylesheet text for the page.
	Style string
	// ViewName is the configured layout.
	ViewName View
}

// TemplateFunc renders a complete HTML document for a listing. It replaces
// the placeholder template when set on Config.
type TemplateFunc func(data TemplateData) (string, error)

// Config holds the listing options. The zero value is not usable: Root is
// required. All other fields are optional.
type Config struct {
	// Root confines every listing. Required.
	Root string
	// Fs is the filesystem Root lives on. Defaults to the host filesystem.
	Fs afero.Fs
	// Filter drops entries from listings when it returns false.
	Filter Filter
	// Hidden keeps dotfiles in listings.
	Hidden bool
	// Icons enables inline icons on HTML listings.
	Icons bool
	// Stylesheet is a path to a CSS file replacing the built-in style.
	Stylesheet string
	// Template is a path to an HTML page template replacing the built-in
	// one. The template is re-read on every render, so edits show up
	// without a restart.
	Template string
	// TemplateFunc renders HTML listings instead of Template when set.
	TemplateFunc TemplateFunc
	// View picks the HTML layout. Defaults to ViewTiles.
	View View
}
