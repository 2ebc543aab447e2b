package main

import "github.com/dotcommander/tidy/cmd"

func main() {
	cmd.Execute()
}
