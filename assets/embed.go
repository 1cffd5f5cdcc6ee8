package assets

import (
	"embed"
	"io/fs"
)

// webFS embeds the converter page served by `colorconv serve`.
//
// NOTE: go:embed patterns must not use ".." and must be relative to this file.
//
//go:embed web
var webFS embed.FS

// Web returns the page files rooted at the directory holding index.html.
func Web() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}
