package main

import "github.com/wasm-bundle/wasm-bundle/cmd"

// main is the entry point of the wasm-bundle CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
