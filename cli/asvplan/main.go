// Package main is the CLI command itself.
package main

import (
	"log"
	"os"

	asvcli "go.viam.com/asvplan/cli"
)

func main() {
	app := asvcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
