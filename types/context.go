package types

import "io"

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
}
