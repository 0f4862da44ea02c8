package main

import (
	"os"

	"github.com/nulzo/agent-models/internal/commands"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "v0.1.0"

func main() {
	os.Exit(commands.Execute(Version))
}
