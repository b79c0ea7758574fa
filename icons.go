package dirindex

import (
	"mime"
	"path/filepath"
	"strings"
)

// IconRecord names the CSS class and asset file backing one entry's icon.
type IconRecord struct {
	Class string
	Asset string
}

// Icon assets by exact extension, exact media type, media type suffix, and
// top-level media type class, consulted in that order by Classify.
var (
	iconsByExt = map[string]string{
		".7z":   "archive.svg",
		".bz2":  "archive.svg",
		".c":    "code.svg",
		".cc":   "code.svg",
		".conf": "text.svg",
		".cpp":  "code.svg",
		".cs":   "code.svg",
		".css":  "code.svg",
		".go":   "code.svg",
		".gz":   "archive.svg",
		".h":    "code.svg",
		".hpp":  "code.svg",
		".ini":  "text.svg",
		".java": "code.svg",
		".js":   "code.svg",
		".log":  "text.svg",
		".md":   "text.svg",
		".mjs":  "code.svg",
		".php":  "code.svg",
		".py":   "code.svg",
		".rar":  "archive.svg",
		".rb":   "code.svg",
		".rs":   "code.svg",
		".sh":   "code.svg",
		".tar":  "archive.svg",
		".tgz":  "archive.svg",
		".toml": "text.svg",
		".ts":   "code.svg",
		".txt":  "text.svg",
		".xz":   "archive.svg",
		".yaml": "text.svg",
		".yml":  "text.svg",
		".zip":  "archive.svg",
	}

	iconsByType = map[string]string{
		"application/json": "code.svg",
		"application/pdf":  "pdf.svg",
		"application/zip":  "archive.svg",
	}

	iconsBySuffix = map[string]string{
		"+json": "code.svg",
		"+xml":  "code.svg",
		"+zip":  "archive.svg",
	}

	iconsByClass = map[string]string{
		"audio": "audio.svg",
		"image": "image.svg",
		"text":  "text.svg",
		"video": "video.svg",
	}
)

const (
	defaultIconAsset   = "file.svg"
	directoryIconAsset = "folder.svg"
)

// DirectoryIcon is the record every directory entry gets. Directories never
// enter the Classify cascade.
func DirectoryIcon() IconRecord {
	return IconRecord{Class: "icon-directory", Asset: directoryIconAsset}
}

// Classify picks an icon for a file name. The cascade tries the exact
// extension, the extension's media type, the media type's +suffix, and the
// top-level media type class before giving up on the generic file icon.
func Classify(name string) IconRecord {
	ext := strings.ToLower(filepath.Ext(name))

	if asset, ok := iconsByExt[ext]; ok {
		return IconRecord{Class: "icon-" + strings.TrimPrefix(ext, "."), Asset: asset}
	}

	mediatype := mime.TypeByExtension(ext)
	if mediatype == "" {
		return IconRecord{Class: "icon-default", Asset: defaultIconAsset}
	}
	// TypeByExtension may carry parameters such as charset.
	if mt, _, err := mime.ParseMediaType(mediatype); err == nil {
		mediatype = mt
	}

	if asset, ok := iconsByType[mediatype]; ok {
		class := "icon-" + strings.ReplaceAll(mediatype, "/", "-")
		return IconRecord{Class: class, Asset: asset}
	}

	if _, suffix, ok := strings.Cut(mediatype, "+"); ok {
		if asset, ok := iconsBySuffix["+"+suffix]; ok {
			return IconRecord{Class: "icon-" + suffix, Asset: asset}
		}
	}

	class, _, _ := strings.Cut(mediatype, "/")
	if asset, ok := iconsByClass[class]; ok {
		return IconRecord{Class: "icon-" + class, Asset: asset}
	}

	return IconRecord{Class: "icon-default", Asset: defaultIconAsset}
}
