package main

import "github.com/cloudopsio/catalogwatch/cmd/catalogwatch/commands"

func main() {
	commands.Execute()
}
