package main

import "fpp-cli/cmd"

func main() {
	cmd.Execute()
}
