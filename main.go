package main

import (
	"os"

	"github.com/trick-cli/trick/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
