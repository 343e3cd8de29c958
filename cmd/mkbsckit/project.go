package main

import (
	"flag"
	"os"

	"github.com/HelmerNylen/mkbsc/internal/serialize"
)

func projectCmd(args []string) error {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	player := fs.Int("player", 0, "player index to project onto")
	output := fs.String("o", "", "write the projected game to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage("project <game-file> [-player N] [-o out.game]")
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

	projected, err := g.Project(*player)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return serialize.Write(w, projected)
}
