package main

import "github.com/arbiter-gg/arbiter/internal/cli"

func main() {
	cli.Execute()
}
