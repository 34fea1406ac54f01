// Package version holds the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/snake2p/version.Version=...".
package version

// Version of the snake2p binary.
var Version = "dev"
