//go:build mage

// Package main provides build targets for the scratchbook project using Mage.
//
// Usage:
//
//	mage build          Compile the scratchbook binary to bin/
//	mage test:all       Run all tests
//	mage test:cover     Run tests with a coverage profile in bin/
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage serve          Run the browse API against the default data dir
//	mage clean          Remove build artifacts
//	mage install        Install scratchbook to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main
