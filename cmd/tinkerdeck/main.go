package main

import (
	"github.com/tinkergames/tinkerdeck/internal/cli"
)

func main() {
	cli.Execute()
}
