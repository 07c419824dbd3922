package main

import "github.com/notargets/gmsh2fluent/cmd"

func main() {
	cmd.Execute()
}
