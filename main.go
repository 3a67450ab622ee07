package main

import "github.com/alexiusacademia/goaisc/cmd"

func main() {
	cmd.Execute()
}
