// internal/server/static.go
package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// staticFS exposes the embedded sign-up page rooted at the static directory.
func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The static directory is compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FS(sub)
}
