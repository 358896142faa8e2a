package main

import (
	"os"

	"happiness-etl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
