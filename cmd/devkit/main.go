package main

import (
	"os"

	"github.com/viant/devkit/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
