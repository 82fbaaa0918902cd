package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates/* static/*
var siteFS embed.FS

// FS returns an http.FileSystem for the embedded static assets.
func FS() http.FileSystem {
	sub, err := fs.Sub(siteFS, "static")
	if err != nil {
		// Should never happen if the embedded tree is intact.
		// Expose the full FS on error.
		return http.FS(siteFS)
	}
	return http.FS(sub)
}
