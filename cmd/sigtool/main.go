package main

import "github.com/roynalnaruto/signatures/cmd/sigtool/cmd"

func main() {
	cmd.Execute()
}
