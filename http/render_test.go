package http

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/srashe/dirindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metaFile(size int64) *dirindex.FileMeta {
	return &dirindex.FileMeta{
		Size:    size,
		ModTime: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestRenderPlain(t *testing.T) {
	t.Run("newline joined with trailing newline", func(t *testing.T) {
		body, err := renderPlain(&RenderContext{Names: []string{"a.txt", "b.txt"}})
		require.NoError(t, err)
		assert.Equal(t, "a.txt\nb.txt\n", string(body))
	})

	t.Run("empty listing is a single newline", func(t *testing.T) {
		body, err := renderPlain(&RenderContext{})
		require.NoError(t, err)
		assert.Equal(t, "\n", string(body))
	})
}

func TestRenderJSON(t *testing.T) {
	t.Run("names as string array", func(t *testing.T) {
		body, err := renderJSON(&RenderContext{Names: []string{"A", "b.txt"}})
		require.NoError(t, err)
		assert.JSONEq(t, `["A","b.txt"]`, string(body))
	})

	t.Run("empty listing is an empty array", func(t *testing.T) {
		body, err := renderJSON(&RenderContext{})
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body))
	})
}

func TestBreadcrumb(t *testing.T) {
	t.Run("cumulative links per segment", func(t *testing.T) {
		out := breadcrumb("/docs/reports")
		assert.Contains(t, out, `<a href="/docs">docs</a>`)
		assert.Contains(t, out, `<a href="/docs/reports">reports</a>`)
	})

	t.Run("segments escaped in href and text", func(t *testing.T) {
		out := breadcrumb("/with space/<b>")
		assert.Contains(t, out, `href="/with%20space"`)
		assert.Contains(t, out, `&lt;b&gt;`)
		assert.NotContains(t, out, "<b>")
	})

	t.Run("root renders separator only", func(t *testing.T) {
		assert.Equal(t, " / ", breadcrumb("/"))
	})
}

func TestFileList(t *testing.T) {
	t.Run("view class and entry spans", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "notes.txt", Meta: metaFile(2048)},
		}
		out := fileList(entries, "/docs", false, dirindex.ViewTiles)

		assert.Contains(t, out, `<ul id="files" class="view-tiles">`)
		assert.Contains(t, out, `href="/docs/notes.txt"`)
		assert.Contains(t, out, `<span class="name">notes.txt</span>`)
		assert.Contains(t, out, `<span class="size">2.0 KiB</span>`)
		assert.Contains(t, out, "3:09:26 PM")
	})

	t.Run("details view emits header row", func(t *testing.T) {
		out := fileList(nil, "/", false, dirindex.ViewDetails)
		assert.Contains(t, out, `<li class="header">`)
		assert.Contains(t, out, `<span class="name">Name</span>`)
	})

	t.Run("tiles view has no header row", func(t *testing.T) {
		out := fileList(nil, "/", false, dirindex.ViewTiles)
		assert.NotContains(t, out, `class="header"`)
	})

	t.Run("parent link collapses upward", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "..", Meta: &dirindex.FileMeta{IsDir: true}},
		}
		out := fileList(entries, "/docs", false, dirindex.ViewTiles)
		assert.Contains(t, out, `href="/"`)
	})

	t.Run("parent link shows neither size nor date", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "..", Meta: &dirindex.FileMeta{IsDir: true, ModTime: time.Now()}},
		}
		out := fileList(entries, "/docs", false, dirindex.ViewTiles)
		assert.Contains(t, out, `<span class="size"></span>`)
		assert.Contains(t, out, `<span class="date"></span>`)
	})

	t.Run("directories show no size", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "sub", Meta: &dirindex.FileMeta{IsDir: true, ModTime: time.Now()}},
		}
		out := fileList(entries, "/", false, dirindex.ViewTiles)
		assert.Contains(t, out, `<span class="size"></span>`)
	})

	t.Run("names escaped everywhere", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: `<script>.txt`, Meta: metaFile(1)},
		}
		out := fileList(entries, "/", false, dirindex.ViewTiles)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;.txt")
		assert.Contains(t, out, `href="/%3Cscript%3E.txt"`)
	})

	t.Run("icon classes join extension and cascade class", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "main.go", Meta: metaFile(1)},
			{Name: "sub", Meta: &dirindex.FileMeta{IsDir: true}},
		}
		out := fileList(entries, "/", true, dirindex.ViewTiles)
		assert.Contains(t, out, `class="icon icon-go"`)
		assert.Contains(t, out, `class="icon icon-directory"`)
	})

	t.Run("missing metadata renders blank size and date", func(t *testing.T) {
		entries := []dirindex.Entry{{Name: "ghost.txt"}}
		out := fileList(entries, "/", false, dirindex.ViewTiles)
		assert.Contains(t, out, `<span class="name">ghost.txt</span>`)
		assert.Contains(t, out, `<span class="size"></span>`)
		assert.Contains(t, out, `<span class="date"></span>`)
	})
}

func TestIconStyle(t *testing.T) {
	t.Run("disabled yields nothing", func(t *testing.T) {
		css, err := iconStyle([]dirindex.Entry{{Name: "a.txt"}}, false)
		require.NoError(t, err)
		assert.Empty(t, css)
	})

	t.Run("one rule per asset with aggregated selectors", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "readme.txt", Meta: metaFile(1)},
			{Name: "notes.md", Meta: metaFile(1)},
			{Name: "other.txt", Meta: metaFile(1)},
		}
		css, err := iconStyle(entries, true)
		require.NoError(t, err)

		// .txt and .md share text.svg, so exactly one data URI appears.
		assert.Equal(t, 1, strings.Count(css, "background-image"))
		assert.Contains(t, css, "#files .icon-txt .name")
		assert.Contains(t, css, "#files .icon-md .name")
		assert.Contains(t, css, ",\n")
		assert.Contains(t, css, "data:image/svg+xml;base64,")
	})

	t.Run("directories use the directory asset", func(t *testing.T) {
		entries := []dirindex.Entry{
			{Name: "sub", Meta: &dirindex.FileMeta{IsDir: true}},
		}
		css, err := iconStyle(entries, true)
		require.NoError(t, err)
		assert.Contains(t, css, "#files .icon-directory .name")
	})
}

func TestRenderHTML(t *testing.T) {
	base := func() *RenderContext {
		return &RenderContext{
			Directory: "/docs",
			Path:      "/srv/files/docs",
			Names:     []string{"img", "notes.txt"},
			Entries: []dirindex.Entry{
				{Name: "img", Meta: &dirindex.FileMeta{IsDir: true, ModTime: time.Now()}},
				{Name: "notes.txt", Meta: metaFile(512)},
			},
			ShowParent: true,
			View:       dirindex.ViewTiles,
			Fs:         afero.NewMemMapFs(),
		}
	}

	t.Run("placeholders replaced", func(t *testing.T) {
		body, err := renderHTML(base())
		require.NoError(t, err)

		page := string(body)
		assert.NotContains(t, page, "{style}")
		assert.NotContains(t, page, "{files}")
		assert.NotContains(t, page, "{directory}")
		assert.NotContains(t, page, "{linked-path}")
		assert.Contains(t, page, "listing directory /docs")
		assert.Contains(t, page, `<a href="/docs">docs</a>`)
	})

	t.Run("parent entry prepended when below root", func(t *testing.T) {
		body, err := renderHTML(base())
		require.NoError(t, err)
		assert.Contains(t, string(body), `title=".."`)
	})

	t.Run("no parent entry at root", func(t *testing.T) {
		rc := base()
		rc.Directory = "/"
		rc.ShowParent = false

		body, err := renderHTML(rc)
		require.NoError(t, err)
		assert.NotContains(t, string(body), `title=".."`)
	})

	t.Run("placeholder-shaped names survive substitution", func(t *testing.T) {
		rc := base()
		rc.Entries = []dirindex.Entry{
			{Name: "{directory}", Meta: metaFile(1)},
		}
		rc.ShowParent = false

		body, err := renderHTML(rc)
		require.NoError(t, err)
		assert.Contains(t, string(body), `title="{directory}"`)
	})

	t.Run("custom stylesheet read through fs", func(t *testing.T) {
		rc := base()
		require.NoError(t, afero.WriteFile(rc.Fs, "/theme.css", []byte("body{color:teal}"), 0o644))
		rc.Stylesheet = "/theme.css"

		body, err := renderHTML(rc)
		require.NoError(t, err)
		assert.Contains(t, string(body), "body{color:teal}")
	})

	t.Run("missing custom stylesheet fails", func(t *testing.T) {
		rc := base()
		rc.Stylesheet = "/absent.css"

		_, err := renderHTML(rc)
		assert.Error(t, err)
	})

	t.Run("custom template read through fs", func(t *testing.T) {
		rc := base()
		require.NoError(t, afero.WriteFile(rc.Fs, "/page.html", []byte("<main>{files}</main>"), 0o644))
		rc.Template = "/page.html"

		body, err := renderHTML(rc)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<main><ul")
	})

	t.Run("template function takes over", func(t *testing.T) {
		rc := base()
		rc.TemplateFunc = func(data dirindex.TemplateData) (string, error) {
			assert.Equal(t, "/docs", data.Directory)
			assert.Equal(t, dirindex.ViewTiles, data.ViewName)
			assert.NotEmpty(t, data.Style)
			// Parent link arrives prepended.
			require.NotEmpty(t, data.FileList)
			assert.Equal(t, "..", data.FileList[0].Name)
			return "custom page", nil
		}

		body, err := renderHTML(rc)
		require.NoError(t, err)
		assert.Equal(t, "custom page", string(body))
	})
}
