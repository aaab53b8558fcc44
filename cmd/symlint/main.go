package main

import (
	"github.com/DevSymphony/symlint/internal/cmd"

	// Bootstrap: register all built-in modules
	_ "github.com/DevSymphony/symlint/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
