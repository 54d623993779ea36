package main

import "github.com/kozaktomas/beauty-advisor/cmd"

func main() {
	cmd.Execute()
}
