package main

import "github.com/akyairhashvil/pomo/cmd/app/commands"

func main() {
	commands.Execute()
}
