package main

import "hero-quest/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
