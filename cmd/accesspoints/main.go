package main

import "github.com/dogeorg/accesspoints/cmd/accesspoints/cmd"

func main() {
	cmd.Execute()
}
