package main

import "devshell/internal/cli"

func main() {
	cli.Execute()
}
