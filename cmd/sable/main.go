package main

import (
	"github.com/sable-lang/sable/cmd/sable/cmd"
)

func main() {
	cmd.Execute()
}
