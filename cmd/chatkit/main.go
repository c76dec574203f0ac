package main

import "github.com/diogo/chatkit/internal/commands"

func main() {
	commands.Execute()
}
