// Command mkbsckit runs the MKBSC fixpoint construction over a ".game"
// file from the terminal, or serves the same construction as an HTTP +
// WebSocket API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "project":
		err = projectCmd(os.Args[2:])
	case "export":
		err = exportCmd(os.Args[2:])
	case "serve":
		err = serveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `mkbsckit <command> [flags]

Commands:
  run      run the fixpoint driver over a .game file and print the size log
  project  project a .game file to one player and print the result
  export   write a .game file's Graphviz .dot export
  serve    run the HTTP + WebSocket service`)
}
