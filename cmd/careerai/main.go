package main

import "github.com/careerai/go-careerai/cmd/careerai/cmd"

func main() {
	cmd.Execute()
}
