/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/krotik/lolparse/config"
	"github.com/krotik/lolparse/logutil"
	"github.com/krotik/lolparse/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-pretty] [-indent n] [-loglevel level] [-log-file path] file.lol\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "lolparse %v - parses a LOLCODE source file and prints its AST\n\n", config.ProductVersion)
		flag.PrintDefaults()
	}

	pretty := flag.Bool("pretty", false, "print the parsed program back out as LOLCODE instead of dumping the tree")
	indent := flag.Int("indent", config.Int(config.IndentWidth), "spaces per nesting level in -pretty output")
	logLevel := flag.String("loglevel", config.Str(config.LogLevel), "debug, info or error")
	logFile := flag.String("log-file", "", "append diagnostics to this file instead of stderr")
	flag.Parse()

	var sink logutil.Logger = logutil.NewStdOutLogger()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		sink = logutil.NewBufferLogger(f)
	}

	logger, err := logutil.NewLogLevelLogger(sink, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	parser.IndentationLevel = *indent

	if err := run(flag.Arg(0), *pretty, logger); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
}

func run(fname string, pretty bool, logger logutil.Logger) error {
	src, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	logger.LogDebug("lexing ", fname)

	prog, err := parser.Parse(fname, string(src))
	if err != nil {
		return err
	}

	logger.LogInfo("parsed ", fname, " (HAI ", prog.Version, ")")

	if pretty {
		out, err := parser.PrettyPrint(prog)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	fmt.Print(parser.Dump(prog))
	return nil
}
