package main

import "github.com/pnch-cli/pnch/cmd"

func main() {
	cmd.Execute()
}
