package cowfile

import (
	"embed"
	"io/fs"
)

//go:embed cows/*.cow
var embeddedFS embed.FS

// builtinFS returns the embedded cows rooted at the cows directory.
func builtinFS() fs.FS {
	sub, err := fs.Sub(embeddedFS, "cows")
	if err != nil {
		panic("cowfile: embedded cows missing: " + err.Error())
	}
	return sub
}
