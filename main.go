package main

import "github.com/frankyi-gh/aplcheck/cmd"

func main() {
	cmd.Execute()
}
