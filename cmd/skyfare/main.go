package main

import "github.com/aalvaropc/skyfare/internal/cli"

func main() {
	cli.Execute()
}
