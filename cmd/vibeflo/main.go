package main

import "github.com/josephwaugh312/VibeFlo-sub006/internal/cli"

func main() {
	cli.Execute()
}
