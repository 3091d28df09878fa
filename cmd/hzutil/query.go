// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzi"
	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/internal/folding"
	"github.com/ianlewis/go-hanzi/pinyin"
	"github.com/ianlewis/go-hanzi/word"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "look up a character or word",
	ArgsUsage: "TERM",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one TERM, got %d arguments", ErrFlagParse, c.NArg())
		}
		term, err := folding.Term(c.Args().First())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHzutil, err)
		}

		catalog, err := openCatalog(c)
		if err != nil {
			return err
		}

		printResult(c.App.Writer, catalog.Query(term))
		return nil
	},
}

func printResult(w io.Writer, r *hanzi.Result) {
	if !r.Found() {
		fmt.Fprintf(w, "Nothing found for %q.\n", r.Term)
		return
	}

	if r.Character != nil {
		printCharacter(w, r.Character)
		if len(r.Compounds) > 0 {
			fmt.Fprintf(w, "\nUsed in: %s\n", hanziList(r.Compounds))
		}
		if len(r.ContainingWords) > 0 {
			fmt.Fprintf(w, "\nWords containing %s:\n", r.Character.Hanzi)
			printWords(w, r.ContainingWords)
		}
	}

	if len(r.Words) > 0 {
		if r.Character != nil {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Words spelled %s:\n", r.Term)
		printWords(w, r.Words)
	}
}

func printCharacter(w io.Writer, ch *char.Character) {
	components := make([]string, 0, len(ch.Components))
	for _, ref := range ch.Components {
		components = append(components, refString(ref))
	}
	radical := "-"
	if ch.Radical != nil {
		radical = refString(*ch.Radical)
	}

	tbl := table.New("Character", ch.Hanzi).WithWriter(w)
	tbl.AddRow("Strokes", strconv.Itoa(ch.Strokes))
	tbl.AddRow("Composition", fmt.Sprintf("%s %s", ch.Kind.Code(), ch.Kind))
	tbl.AddRow("Components", strings.Join(components, " "))
	tbl.AddRow("Radical", radical)
	tbl.AddRow("Cangjie", ch.Cangjie)
	tbl.Print()
}

func printWords(w io.Writer, words []*word.Word) {
	tbl := table.New("Word", "Pinyin", "Translation").WithWriter(w)
	for _, wd := range words {
		tbl.AddRow(wd.Spelling(), pinyin.Format(wd.Pinyin), html2text.HTML2Text(wd.Translation))
	}
	tbl.Print()
}

func refString(r char.Ref) string {
	if r.IsResolved() {
		return r.Hanzi()
	}
	return r.Hanzi() + " (unresolved)"
}

func hanziList(chars []*char.Character) string {
	s := make([]string, 0, len(chars))
	for _, ch := range chars {
		s = append(s, ch.Hanzi)
	}
	return strings.Join(s, " ")
}
