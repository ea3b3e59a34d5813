package main

import "github.com/katalvlaran/pathfinder/cmd/pathfinder/commands"

func main() {
	commands.Execute()
}
