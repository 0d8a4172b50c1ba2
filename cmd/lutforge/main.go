package main

import (
	"github.com/darkframe/lutforge/internal/cli"
)

func main() {
	cli.Execute()
}
