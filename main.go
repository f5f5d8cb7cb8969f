package main

import "github.com/cmmoran/javagen/cmd"

func main() {
	cmd.Execute()
}
