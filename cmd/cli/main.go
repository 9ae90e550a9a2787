package main

import "pokereview/cmd/cli/command"

func main() {
	command.Execute()
}
