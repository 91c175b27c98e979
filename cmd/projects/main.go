package main

import (
	"os"

	"github.com/KELiON/raycast-search-projects/internal/cmd"
)

var (
	// Version is set during build
	Version = "dev"
	// BuildTime is set during build
	BuildTime = "unknown"
)

func main() {
	cmd.Version = Version
	cmd.BuildTime = BuildTime

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
