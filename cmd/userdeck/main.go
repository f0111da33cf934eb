package main

import "github.com/dpetrovs/userdeck/internal/cmd"

func main() {
	cmd.Execute()
}
