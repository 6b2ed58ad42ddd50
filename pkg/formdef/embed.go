package formdef

import (
	"embed"
	"io/fs"
)

//go:embed definitions/*
var embeddedDefinitions embed.FS

// EmbeddedFS returns the bundled form definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "definitions")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Embedded loads the bundled definitions into a Store.
func Embedded() (*Store, error) {
	return LoadFS(EmbeddedFS())
}

// MustEmbedded is like Embedded but panics when the bundled definitions fail
// to load. Intended for package-level initialisation.
func MustEmbedded() *Store {
	store, err := Embedded()
	if err != nil {
		panic(err)
	}
	return store
}
