package main

import "github.com/KaramelBytes/enrolldeck-cli/cmd"

func main() {
	cmd.Execute()
}
