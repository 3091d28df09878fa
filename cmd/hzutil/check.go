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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

// ErrUnresolved indicates that the data has unresolved references.
var ErrUnresolved = fmt.Errorf("%w: unresolved references", ErrHzutil)

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "load the data and report unresolved references",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail if any reference is unresolved",
		},
	},
	Action: func(c *cli.Context) error {
		catalog, err := openCatalog(c)
		if err != nil {
			return err
		}

		stats := catalog.Stats()
		fmt.Fprintln(c.App.Writer, stats)

		unresolved := catalog.Characters().Unresolved()
		if len(unresolved) == 0 {
			return nil
		}

		fmt.Fprintln(c.App.Writer)
		tbl := table.New("Character", "Reference", "Role").WithWriter(c.App.Writer)
		for _, u := range unresolved {
			tbl.AddRow(u.Hanzi, u.Ref, string(u.Role))
		}
		tbl.Print()

		if c.Bool("strict") {
			return fmt.Errorf("%w: %d", ErrUnresolved, len(unresolved))
		}
		return nil
	},
}
