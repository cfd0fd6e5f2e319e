package main

import "github.com/petrarca/gemfile-parser/internal/cmd"

func main() {
	cmd.Execute()
}
