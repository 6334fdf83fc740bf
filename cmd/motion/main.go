package main

import "github.com/go-drift/motion/cmd/motion/cmd"

func main() {
	cmd.Execute()
}
