// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

// Command lcs prints the longest common subsequence of its input
// sequences, given as arguments or as a newline-delimited file.
//
//	lcs [-f FILE] [SEQUENCE ...]
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	suffixtree "github.com/streichgeorg/suffix-tree"
)

func main() {
	app := &cli.App{
		Name:      "lcs",
		Usage:     "print the longest common subsequence of the input sequences",
		ArgsUsage: "[SEQUENCE ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read newline-delimited sequences from `FILE`",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var seqs [][]byte
	if path := c.String("file"); path != "" {
		var err error
		if seqs, err = readSequences(path); err != nil {
			return err
		}
	} else {
		for _, arg := range c.Args().Slice() {
			seqs = append(seqs, []byte(arg))
		}
	}

	lcs, err := suffixtree.LongestCommonSubsequence(seqs, nil)
	if err != nil {
		return err
	}

	switch {
	case lcs == nil:
		fmt.Println("No common subsequence.")
	case !utf8.Valid(lcs):
		fmt.Println("<invalid_string>")
	default:
		fmt.Printf("%s\n", lcs)
	}
	return nil
}

func readSequences(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seqs [][]byte
	sc := bufio.NewScanner(f)
	sc.Buffer(nil, 16*1024*1024)
	for sc.Scan() {
		seqs = append(seqs, append([]byte(nil), sc.Bytes()...))
	}
	return seqs, sc.Err()
}
