package main

import (
	"os"

	"github.com/ether/builder-revisions/lib/cli"
)

func main() {
	if err := cli.Execute(GetEmbedForLocale()); err != nil {
		os.Exit(1)
	}
}
