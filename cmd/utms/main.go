package main

import "utms/internal/cli"

func main() {
	cli.Execute()
}
