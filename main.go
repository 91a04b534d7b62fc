package main

import "github.com/hmans/gradebook/cmd"

func main() {
	cmd.Execute()
}
