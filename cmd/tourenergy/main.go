package main

import "github.com/planbiir/tourenergy/cmd/tourenergy/cmd"

func main() {
	cmd.Execute()
}
