package main

import "nt/cmd/cli"

func main() {
	cli.RunCLI()
}
