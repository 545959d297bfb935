package main

import "github.com/dotcommander/golfx/cmd"

func main() {
	cmd.Execute()
}
