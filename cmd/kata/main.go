package main

import "os"

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
