// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

// Command visualize pretty-prints the generalized suffix tree of its
// input sequences.
//
//	visualize [-a SYMBOLS] SEQUENCE [SEQUENCE ...]
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
		Name:      "visualize",
		Usage:     "pretty-print the suffix tree of the input sequences",
		ArgsUsage: "SEQUENCE [SEQUENCE ...]",
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
	var alphabet *suffixtree.Alphabet
	if symbols := c.String("alphabet"); symbols != "" {
		var err error
		if alphabet, err = suffixtree.NewAlphabet([]byte(symbols)); err != nil {
			return err
		}
	}

	var seqs [][]byte
	for _, arg := range c.Args().Slice() {
		seqs = append(seqs, []byte(arg))
	}

	tree, err := suffixtree.FromSequences(seqs, alphabet)
	if err != nil {
		return err
	}

	fmt.Print(tree.PrettyPrint())
	return nil
}
