package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2016, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"os"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/cmd"
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/types/itemset"
)

func init() {
	cmd.UsageMessage = "list-embeddings --help"
	cmd.ExtendedMessage = `
list-embeddings -p <itemset> [-p <itemset>]... itemset [Type Options] <input-path>
list-embeddings -n <patterns file> itemset [Type Options] <input-path>

Prints every itemset with its support and the ids (0 based line or record
positions) of the transactions containing it. An itemset is written as item
names separated by commas, e.g. "Milk, Bread". A patterns file is the
patterns file written by the file reporter.
`
}

func main() {
	os.Exit(run())
}

func loadNames(path string) (patterns []string, err error) {
	in, closer := cmd.Input(path)
	defer closer()
	lines, err := itemset.ReadItems(in)
	if err != nil {
		return nil, err
	}
	patterns = make([]string, 0, len(lines))
	seen := make(map[string]bool)
	for _, line := range lines {
		pattern := strings.SplitN(line, "\t", 2)[0]
		if !seen[pattern] {
			seen[pattern] = true
			patterns = append(patterns, pattern)
		}
	}
	return patterns, nil
}

func parse(pattern string, u *itemset.Universe) (*itemset.Itemset, error) {
	items := make([]itemset.Item, 0, 4)
	for _, name := range strings.Split(pattern, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		item, has := u.Lookup(name)
		if !has {
			return nil, errors.Errorf("unknown item '%v'", name)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, errors.Errorf("empty itemset")
	}
	return itemset.New(items...), nil
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hp:n:c:",
		[]string{
			"help",
			"pattern=",
			"names=",
			"cache=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	patterns := make([]string, 0, 10)
	namesPath := ""
	cache := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-p", "--pattern":
			patterns = append(patterns, oa.Arg())
		case "-n", "--names":
			namesPath = cmd.AssertFileOrDirExists(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if namesPath != "" && len(patterns) > 0 {
		fmt.Fprintf(os.Stderr, "You cannot supply patterns with both (-p) and (-n)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(patterns) == 0 && namesPath == "" {
		fmt.Fprintf(os.Stderr, "You must supply a pattern (-p, -n)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if namesPath != "" {
		patterns, err = loadNames(namesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error loading the patterns file\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}

	if len(args) < 2 || args[0] != "itemset" {
		fmt.Fprintf(os.Stderr, "You must supply the itemset type and an input path\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf := &config.Config{Cache: cache}
	loader, args := cmd.Types[args[0]](args[1:], conf)
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	inputPath := cmd.AssertFileOrDirExists(args[0])
	db, err := loader.Load(func() (reader io.Reader, closer func()) {
		return cmd.Input(inputPath)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer db.Close()
	fmtr := itemset.NewFormatter(db)

	errors.Logf("INFO", "looking for supporting transactions")
	for _, pattern := range patterns {
		items, err := parse(pattern, db.Universe)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error during the parsing the pattern '%v'\n", pattern)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		txs, err := fmtr.FormatEmbeddings(items)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error looking up '%v'\n", pattern)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		fmt.Printf("%v\t%v\n", fmtr.FormatPattern(items, len(txs)), strings.Join(txs, " "))
	}

	return 0
}
