package main

import (
	"os"

	"github.com/Giulio2002/faster_xxhash/internal/cmd"
)

func main() {
	os.Exit(cmd.RunCmdline(os.Args))
}
