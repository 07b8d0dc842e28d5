package main

import "github.com/papapumpkin/jugglelog/cmd"

func main() {
	cmd.Execute()
}
