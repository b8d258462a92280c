package main

import (
	"github.com/partlookup/pyfreeze/cmd"
)

func main() {
	cmd.Execute()
}
