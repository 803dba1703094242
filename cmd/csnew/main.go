package main

import (
	"github.com/tacogips/csnew/internal/cli"
)

func main() {
	cli.Execute()
}
