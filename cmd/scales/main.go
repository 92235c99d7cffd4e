package main

import "github.com/Conceptual-Machines/magda-scales/internal/cli"

func main() {
	cli.Execute()
}
