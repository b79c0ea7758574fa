package http

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/srashe/dirindex"
	"github.com/srashe/dirindex/assets"
)

// modTimeFormat renders entry timestamps in the file list.
const modTimeFormat = "1/2/2006 3:04:05 PM"

// iconCache holds the base64 icon bytes shared by every handler in the
// process.
var iconCache = assets.NewCache(assets.Icons())

// RenderContext carries everything a representation renderer needs for one
// request.
type RenderContext struct {
	// Request is the request being answered.
	Request *http.Request
	// Directory is the request path being listed, percent-decoded.
	Directory string
	// Path is the resolved absolute directory path.
	Path string
	// ShowParent reports whether the directory may link to its parent.
	ShowParent bool
	// Names holds the filtered entry names in lexicographic order. The
	// plain and JSON representations emit exactly this order.
	Names []string
	// Entries holds the entries with metadata in display order. The HTML
	// representation emits this order with a parent link prepended when
	// ShowParent is set.
	Entries []dirindex.Entry
	// DisplayIcons, View, Stylesheet, Template, and TemplateFunc mirror
	// the listing configuration.
	DisplayIcons bool
	View         dirindex.View
	Stylesheet   string
	Template     string
	TemplateFunc dirindex.TemplateFunc
	// Fs reads custom stylesheet and template files.
	Fs afero.Fs
}

// RenderFunc produces the response body for one representation.
type RenderFunc func(rc *RenderContext) ([]byte, error)

func renderPlain(rc *RenderContext) ([]byte, error) {
	return []byte(strings.Join(rc.Names, "\n") + "\n"), nil
}

func renderJSON(rc *RenderContext) ([]byte, error) {
	names := rc.Names
	if names == nil {
		names = []string{}
	}

	body, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal names: %w", err)
	}
	return body, nil
}

func renderHTML(rc *RenderContext) ([]byte, error) {
	style := assets.Style()
	if rc.Stylesheet != "" {
		b, err := afero.ReadFile(rc.Fs, rc.Stylesheet)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet %s: %w", rc.Stylesheet, err)
		}
		style = string(b)
	}

	entries := rc.Entries
	if rc.ShowParent {
		parent := dirindex.Entry{Name: "..", Meta: &dirindex.FileMeta{IsDir: true}}
		entries = append([]dirindex.Entry{parent}, entries...)
	}

	if rc.TemplateFunc != nil {
		page, err := rc.TemplateFunc(dirindex.TemplateData{
			Directory:    rc.Directory,
			DisplayIcons: rc.DisplayIcons,
			FileList:     entries,
			Path:         rc.Path,
			Style:        style,
			ViewName:     rc.View,
		})
		if err != nil {
			return nil, fmt.Errorf("render template: %w", err)
		}
		return []byte(page), nil
	}

	tpl := assets.Template()
	if rc.Template != "" {
		b, err := afero.ReadFile(rc.Fs, rc.Template)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", rc.Template, err)
		}
		tpl = string(b)
	}

	iconCSS, err := iconStyle(entries, rc.DisplayIcons)
	if err != nil {
		return nil, fmt.Errorf("icon style: %w", err)
	}

	// A single replacement pass keeps placeholder-shaped file names from
	// being substituted again.
	page := strings.NewReplacer(
		"{style}", style+iconCSS,
		"{files}", fileList(entries, rc.Directory, rc.DisplayIcons, rc.View),
		"{directory}", html.EscapeString(rc.Directory),
		"{linked-path}", breadcrumb(rc.Directory),
	).Replace(tpl)

	return []byte(page), nil
}

// breadcrumb renders the directory as cumulative per-segment links. Both
// the link text and the href escape each segment individually.
func breadcrumb(dir string) string {
	parts := strings.Split(dir, "/")
	crumbs := make([]string, len(parts))

	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = url.PathEscape(part)
		href := strings.Join(parts[:i+1], "/")
		crumbs[i] = `<a href="` + html.EscapeString(href) + `">` + html.EscapeString(part) + `</a>`
	}

	return strings.Join(crumbs, " / ")
}

// fileList renders the entry markup: one link per entry with name, size,
// and date spans, and icon classes when enabled.
func fileList(entries []dirindex.Entry, dir string, useIcons bool, view dirindex.View) string {
	var b strings.Builder

	b.WriteString(`<ul id="files" class="view-` + html.EscapeString(string(view)) + `">`)
	b.WriteByte('\n')

	if view == dirindex.ViewDetails {
		b.WriteString(`<li class="header">` +
			`<span class="name">Name</span>` +
			`<span class="size">Size</span>` +
			`<span class="date">Modified</span>` +
			`</li>`)
		b.WriteByte('\n')
	}

	segments := strings.Split(dir, "/")
	encoded := make([]string, len(segments), len(segments)+1)
	for i, segment := range segments {
		encoded[i] = url.PathEscape(segment)
	}

	for _, entry := range entries {
		isDir := entry.IsDir()

		var classes []string
		if useIcons {
			classes = append(classes, "icon")
			if isDir {
				classes = append(classes, "icon-directory")
			} else {
				if ext := strings.ToLower(filepath.Ext(entry.Name)); ext != "" {
					classes = append(classes, "icon-"+strings.TrimPrefix(ext, "."))
				}
				icon := dirindex.Classify(entry.Name)
				if !slices.Contains(classes, icon.Class) {
					classes = append(classes, icon.Class)
				}
			}
		}

		href := path.Clean(strings.Join(append(encoded, url.PathEscape(entry.Name)), "/"))

		var size, date string
		if entry.Meta != nil && entry.Name != ".." {
			if !isDir {
				size = humanize.IBytes(uint64(entry.Meta.Size))
			}
			date = entry.Meta.ModTime.Format(modTimeFormat)
		}

		b.WriteString(`<li><a href="` + html.EscapeString(href) +
			`" class="` + html.EscapeString(strings.Join(classes, " ")) +
			`" title="` + html.EscapeString(entry.Name) + `">` +
			`<span class="name">` + html.EscapeString(entry.Name) + `</span>` +
			`<span class="size">` + html.EscapeString(size) + `</span>` +
			`<span class="date">` + html.EscapeString(date) + `</span>` +
			`</a></li>`)
		b.WriteByte('\n')
	}

	b.WriteString(`</ul>`)
	return b.String()
}

// iconStyle builds one CSS rule per distinct icon asset, with the selectors
// of every class sharing that asset aggregated onto the rule. Asset bytes
// come from the process-wide cache as base64 data URIs.
func iconStyle(entries []dirindex.Entry, useIcons bool) (string, error) {
	if !useIcons {
		return "", nil
	}

	var order []string
	rules := make(map[string]string)
	selectors := make(map[string][]string)

	for _, entry := range entries {
		icon := dirindex.DirectoryIcon()
		if !entry.IsDir() {
			icon = dirindex.Classify(entry.Name)
		}

		if _, ok := rules[icon.Asset]; !ok {
			encoded, err := iconCache.Encoded(icon.Asset)
			if err != nil {
				return "", err
			}
			rules[icon.Asset] = "background-image: url(data:image/svg+xml;base64," + encoded + ");"
			order = append(order, icon.Asset)
		}

		selector := "#files ." + icon.Class + " .name"
		if !slices.Contains(selectors[icon.Asset], selector) {
			selectors[icon.Asset] = append(selectors[icon.Asset], selector)
		}
	}

	var b strings.Builder
	for _, asset := range order {
		b.WriteString(strings.Join(selectors[asset], ",\n"))
		b.WriteString(" {\n  ")
		b.WriteString(rules[asset])
		b.WriteString("\n}\n")
	}
	return b.String(), nil
}
