package main

import "github.com/agentic-research/molview/cmd"

func main() {
	cmd.Execute()
}
