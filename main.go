package main

import "github.com/pfrederiksen/gridsearch/cmd"

func main() {
	cmd.Execute()
}
