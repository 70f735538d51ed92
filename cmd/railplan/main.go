package main

import (
	"github.com/jmolina/railplan-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
