package main

import (
	"github.com/confscout/eventscout/internal/cli"
)

func main() {
	cli.Execute()
}
