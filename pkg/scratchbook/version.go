// Package scratchbook carries build metadata shared by the CLI and the
// browse API.
package scratchbook

// Version is the release version reported by `scratchbook version`.
const Version = "0.3.0"
