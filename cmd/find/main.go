// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

// Command find prints every occurrence of a pattern in a string,
// one "start end" pair per line.
//
//	find [-a SYMBOLS] STRING PATTERN
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	suffixtree "github.com/streichgeorg/suffix-tree"
)

func main() {
	app := &cli.App{
		Name:      "find",
		Usage:     "print all occurrences of PATTERN in STRING",
		ArgsUsage: "STRING PATTERN",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Usage:   "restrict the input to the given `SYMBOLS`",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected STRING and PATTERN, got %d arguments", c.NArg())
	}

	var alphabet *suffixtree.Alphabet
	if symbols := c.String("alphabet"); symbols != "" {
		var err error
		if alphabet, err = suffixtree.NewAlphabet([]byte(symbols)); err != nil {
			return err
		}
	}

	tree, err := suffixtree.From([]byte(c.Args().Get(0)), alphabet)
	if err != nil {
		return err
	}

	for occ := range tree.Find([]byte(c.Args().Get(1))) {
		fmt.Println(occ.Start, occ.End)
	}
	return nil
}
