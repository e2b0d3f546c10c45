package main

import (
	"os"

	"github.com/leonardinius/cedar/cmd"
)

func main() {
	app := cmd.NewCedarApp()
	os.Exit(app.Main(os.Args[1:]))
}
