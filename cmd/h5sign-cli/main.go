package main

import (
	"github.com/turtacn/h5sign/cmd/cli"
)

// main is the entry point for the h5sign-cli command-line tool.
// main 是 h5sign-cli 命令行工具的入口点。
func main() {
	cli.Execute()
}
