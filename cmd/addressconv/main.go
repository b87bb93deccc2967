package main

import (
	"os"

	"addressconv/internal/delivery/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
