package main

import "github.com/notargets/gotsunami/cmd"

func main() {
	cmd.Execute()
}
