package main

import "github.com/bidiguard/bidiguard/cmd/bidiguard"

func main() {
	bidiguard.Execute()
}
