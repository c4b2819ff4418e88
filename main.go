package main

import "github.com/treewire/treewire/cmd"

func main() {
	cmd.Execute()
}
