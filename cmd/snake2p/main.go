package main

import "github.com/battlesnakeio/snake2p/cmd/snake2p/commands"

func main() {
	commands.Execute()
}
