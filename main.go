package main

import "github.com/fieldrover/bagflow/cmd"

func main() {
	cmd.Execute()
}
