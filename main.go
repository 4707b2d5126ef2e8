package main

import "github.com/gnames/pokedb/cmd"

func main() {
	cmd.Execute()
}
