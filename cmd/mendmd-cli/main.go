package main

import "mendmd/cmd/mendmd-cli/cmd"

func main() {
	cmd.Execute()
}
