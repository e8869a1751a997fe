package main

import "github.com/tranvictor/contractkit/cmd"

func main() {
	cmd.Execute()
}
