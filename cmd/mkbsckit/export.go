package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HelmerNylen/mkbsc/internal/dot"
	"github.com/HelmerNylen/mkbsc/internal/serialize"
)

func exportCmd(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	epistemic := fs.String("epistemic", "nice", "node label rendering: nice, verbose, or isocheck")
	output := fs.String("o", "", "write the .dot export to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage("export <game-file> [-epistemic nice|verbose|isocheck] [-o out.dot]")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := serialize.Parse(f)
	if err != nil {
		return err
	}

	var rendering dot.Rendering
	switch *epistemic {
	case "nice":
		rendering = dot.Nice
	case "verbose":
		rendering = dot.Verbose
	case "isocheck":
		rendering = dot.Isocheck
	default:
		return fmt.Errorf("unknown -epistemic rendering %q", *epistemic)
	}

	w := os.Stdout
	if *output != "" {
		out, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}
	return dot.Write(w, g, rendering)
}
