package main

import (
	"os"

	"github.com/dmitrijs2005/sn/internal/client/cli"
)

func main() {
	os.Exit(cli.Main(os.Args))
}
