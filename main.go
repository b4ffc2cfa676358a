package main

import "github.com/orbitalmech/neoscope/cmd"

func main() {
	cmd.Execute()
}
