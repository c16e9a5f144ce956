package main

import (
	"os"

	"github.com/seblw/grocli/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
