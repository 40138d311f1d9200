// Copyright (c) 2025 Georg Streich
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// invalidLabel stands in for edge labels that are not valid UTF-8.
const invalidLabel = "<invalid_string>"

// PrettyPrint renders the tree, one line per leaf path.
//
//	┳t┳est$0
//	┃ ┣$0
//	┃ ┗$1
//	┣$0
//	...
//
// Each edge prints as its label text; leaves append $<seq id> for their
// terminal. The first child of a node hangs off the parent's label row,
// later children are anchored below it at the label's display width.
// Children print in ascending node-id order, so the output is stable
// for the lifetime of the tree.
func (t *Tree) PrettyPrint() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes the PrettyPrint rendering to w.
func (t *Tree) Fprint(w io.Writer) error {
	for _, line := range t.render(root) {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// render returns the lines of n's subtree, not yet prefixed with the
// connectors of n's ancestors.
func (t *Tree) render(n int32) []string {
	text := t.label(n)
	if t.nodes[n].isLeaf() {
		return []string{text}
	}

	kids := t.children(n)
	pad := strings.Repeat(" ", runewidth.StringWidth(text))

	var lines []string
	for i, c := range kids {
		last := i == len(kids)-1
		for j, line := range t.render(c) {
			switch {
			case i == 0 && j == 0:
				lines = append(lines, text+"┳"+line)
			case j == 0 && !last:
				lines = append(lines, pad+"┣"+line)
			case j == 0:
				lines = append(lines, pad+"┗"+line)
			case !last:
				lines = append(lines, pad+"┃"+line)
			default:
				lines = append(lines, pad+" "+line)
			}
		}
	}
	return lines
}

// label renders n's incoming edge label. Leaves render their payload
// tail followed by $<seq id> for the terminal; the root has no label.
func (t *Tree) label(n int32) string {
	if n == root {
		return ""
	}

	nd := &t.nodes[n]
	payload := t.seqs[nd.seq]

	if nd.isLeaf() {
		return labelText(payload[nd.start:]) + "$" + strconv.Itoa(int(nd.seq))
	}
	return labelText(payload[nd.start:nd.end])
}

func labelText(label []byte) string {
	if !utf8.Valid(label) {
		return invalidLabel
	}
	return string(label)
}
