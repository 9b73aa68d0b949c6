package main

import "github.com/vibast-solutions/ms-go-secours/cmd"

func main() {
	cmd.Execute()
}
