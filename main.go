package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
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
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/SayonikaY/Group-12-Data-mining/cmd"
	"github.com/SayonikaY/Group-12-Data-mining/config"
	"github.com/SayonikaY/Group-12-Data-mining/miners"
	"github.com/SayonikaY/Group-12-Data-mining/miners/prepost"
)

func init() {
	cmd.UsageMessage = "prepost --help"
	cmd.ExtendedMessage = `
prepost - frequent itemsets from a PPC tree and N-lists

$ prepost -o <path> --support=<fraction> [Global Options] \
    itemset [Type Options] <input-path> \
    prepost [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [itemset [Type Options]] then
      <input-path> then [prepost [Mode Options]] and finally the reporters.
      Changes in ordering are not supported.

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use
      'chain log file summary'. See the documentation for Reporters.


Global Options
    -h, --help                view this message
    --types                   show the available types
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<fraction>      minimum support of itemsets as a fraction of the
                              transactions, 0 < support <= 1 (required)
    --max-k=<int>             do not grow itemsets larger than this
    --max-candidates=<int>    stop after joining this many candidate pairs
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Types
    itemset                   sets of named items

    itemset Example
        $ prepost -o /tmp/prepost --support=.2 \
            itemset -l json ./data/basket.json \
            prepost

    itemset Options
        -h, help                 view this message
        -l, loader=<loader-name> the loader to use (default json)
        --items=<path>           the item universe, one name per line (lines
                                 loader only). Items of the transactions not
                                 in the universe are ignored.

    itemset Loaders
        json                     one record naming the universe and the
                                 transactions. An empty items list means the
                                 universe is the order of first appearance.

        json Example file:
            {"items": ["Milk", "Bread", "Eggs"],
             "transactions": [["Milk", "Bread", "Eggs"], ["Milk", "Bread"]]}

        lines                    each line is a transaction, the items are
                                 separated by commas or spaces. Blank lines and
                                 lines starting with # are skipped.

        lines Example file:
            Milk, Bread, Eggs
            Milk, Cheese
            Rice Pasta Tomatoes

Modes
    prepost                   grow itemsets level by level joining N-lists

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the itemsets
    file                      write the itemsets, supporting transactions and
                              N-lists to files in the output dir
    dir                       write each itemset to a nested dir
    count                     write the number of itemsets (per size)
    tree                      write the PPC tree as JSON nodes and edges
    summary                   write the recommendation report
    unique                    takes an "inner reporter" but only passes the
                              unique itemsets to it
    max                       takes an "inner reporter" but only passes the
                              maximal itemsets to it
    skip                      takes an "inner reporter" and passes every n-th
                              itemset to it
    heap-profile              write heap profiles while reporting

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line
        --show-nlist          also log the N-list of every itemset

    file Options
        -p, patterns=<name>   the prefix of the name of the patterns file
        -e, embeddings=<name> the prefix of the name of the file listing the
                              supporting transactions
        -n, nlists=<name>     the name of the N-list file

    dir Options
        -d, dir-name=<name>   name of the directory.

    count, tree, summary Options
        -f, filename=<name>   name of the file in the output dir

    unique Options
        --histogram=<name>    if set unique will write the histogram of how many
                              times each itemset was reported.

    skip Options
        -s, skip=<int>        pass every n-th itemset (default 1)

    heap-profile Options
        -p, profile=<path>    where you want the heap-profile written
        -e, every=<int>       collect every n itemsets reported (default 1)
        -a, after=<int>       collect after n itemsets reported (default 0)

    Examples

        $ prepost -o <path> --support=.2 \
            itemset ./basket.json \
            prepost \
            chain log file tree summary

        $ prepost --skip-log=DEBUG -o /tmp/prepost --support=.05 --max-k=3 \
            itemset -l lines --items=./items.txt ./transactions.txt.gz \
            prepost \
            chain \
                log -p all \
                max \
                    chain \
                        log -p max \
                        file -p max-patterns -e max-embeddings \
                    endchain \
                count
`
}

func prepostMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return prepost.NewMiner(conf), args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"prepost": prepostMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "types", "reporters",
			"support=",
			"max-k=",
			"max-candidates=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v prepost\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := 0.0
	maxK := 0
	maxCandidates := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "--max-k":
			maxK = cmd.ParseInt(oa.Arg())
		case "--max-candidates":
			maxCandidates = cmd.ParseInt(oa.Arg())
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 || support > 1 {
		fmt.Fprintf(os.Stderr, "Support must be in (0, 1], got %v\n", support)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if maxK < 0 || maxCandidates < 0 {
		fmt.Fprintf(os.Stderr, "--max-k and --max-candidates must be >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:         cache,
		Output:        output,
		Support:       support,
		MaxK:          maxK,
		MaxCandidates: maxCandidates,
	}
	return cmd.Main(args, conf, modes)
}
