package main

import (
	"github.com/sunitj/fastx-mcp/cmd"
)

func main() {
	cmd.Execute()
}
