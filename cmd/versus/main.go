package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "versus",
		Usage: "rank anything with single elimination tournaments",
		Commands: []*cli.Command{
			newDraftCommand(),
			newPlayCommand(),
		},
	}
}
