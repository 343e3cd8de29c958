package main

import (
	"flag"
	"os"

	"github.com/HelmerNylen/mkbsc/internal/fixpoint"
	"github.com/HelmerNylen/mkbsc/internal/serialize"
)

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	limit := fs.Int("limit", -1, "maximum number of iterations (-1 for unlimited)")
	output := fs.String("o", "", "write the final iteration to this .game file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage("run <game-file> [-limit N] [-o out.game]")
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

	result, err := fixpoint.IterateUntilIsomorphic(g, *limit)
	if err != nil {
		return err
	}

	printSizeLog(result.Sizes, result.Status)

	if *output == "" {
		return nil
	}
	out, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer out.Close()
	return serialize.Write(out, result.Games[len(result.Games)-1])
}

type usageError string

func (e usageError) Error() string { return string(e) }

func errUsage(msg string) error { return usageError("usage: " + msg) }
