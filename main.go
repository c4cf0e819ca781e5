package main

import "github.com/theirongolddev/training/cmd"

func main() {
	cmd.Execute()
}
