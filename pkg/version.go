// Package pokedb holds build information of the pokedb application.
package pokedb

var (
	// Version of pokedb, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
