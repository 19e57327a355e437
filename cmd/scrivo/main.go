package main

import (
	"os"

	"github.com/scrivoapp/scrivo/internal/interface/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
