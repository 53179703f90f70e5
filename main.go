package main

import "github.com/alexiusacademia/goinertia/cmd"

func main() {
	cmd.Execute()
}
