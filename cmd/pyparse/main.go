/*
File    : pyparse/cmd/pyparse/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the pyparse CLI: a Cobra command
tree with one file per subcommand, rooted in root.go.
*/
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
