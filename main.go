package main

import "github.com/gcollet/mstatx-go/cmd"

func main() {
	cmd.Execute()
}
