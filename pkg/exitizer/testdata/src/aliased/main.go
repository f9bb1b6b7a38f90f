package main

import system "os"

func main() {
	system.Exit(1) // want "os.Exit call"
}
