package main

import (
	"os"

	"sourcegen/cmd/sourcegen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
