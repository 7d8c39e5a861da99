// Package main provides the CLI entrypoint for angelui.
package main

func main() {
	Execute()
}
