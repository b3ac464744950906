package main

import (
	"github.com/llehouerou/dropwidgets/cmd"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
