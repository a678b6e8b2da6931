package main

import "github.com/itsmostafa/magtoc/cmd"

func main() {
	cmd.Execute()
}
