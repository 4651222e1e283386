package main

import "github.com/kamusis/rnadoc/cmd"

func main() {
	cmd.Execute()
}
