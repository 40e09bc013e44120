package main

import (
	"finadvisor/internal/cli"
)

func main() {
	cli.Run()
}
