package main

import "claude-switch/cmd"

func main() {
	cmd.Execute()
}
