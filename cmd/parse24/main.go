// Copyright (C) 2024 the parse24 authors.
// This file is part of parse24
//
// parse24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// parse24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with parse24.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ipplang/ippcode24/config"
	"github.com/ipplang/ippcode24/ippcode"
	"github.com/ipplang/ippcode24/logging"
	"github.com/ipplang/ippcode24/report"
)

var log = logging.Base()

// stdout is buffered and flushed by an atexit handler, so exits taken
// through atexit.Exit emit a complete document or nothing. The
// interrupt path below bypasses the handler on purpose.
var stdout = bufio.NewWriter(os.Stdout)

var rootCmd = &cobra.Command{
	Use:   "parse24 [--stats=FILE directive ...]...",
	Short: "Validate IPPcode24 source and emit its XML representation",
	Long: `parse24 reads IPPcode24 source from standard input, validates it, and
writes the XML representation of the program to standard output.

Each --stats=FILE opens a statistics group written to FILE. The
directives that follow it emit one line each: --loc, --comments,
--labels, --jumps, --fwjumps, --backjumps, --badjumps, --frequent,
--print=TEXT, --eol.`,
	// The stats directives form an ordered, repeatable grammar that
	// flag parsing would reorder, so they are handed over raw.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	Run:                runParser,
}

func reportErrorf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "parse24: "+format+"\n", args...)
	atexit.Exit(code)
}

// handleHelp implements the help contract: --help/-h prints usage and
// exits 0, but only when it is the sole argument.
func handleHelp(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			if len(args) > 1 {
				reportErrorf(ippcode.ExitParam, "--help can't be combined with other arguments")
			}
			cmd.Help()
			atexit.Exit(0)
		}
	}
}

func runParser(cmd *cobra.Command, args []string) {
	handleHelp(cmd, args)

	cfg, err := config.LoadConfigFromDisk(os.Getenv("PARSE24_DATA"))
	if err != nil {
		reportErrorf(ippcode.ExitInternal, "cannot load configuration: %v", err)
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(lvl)
	}

	prog, stats, err := ippcode.Parse(os.Stdin)
	if err != nil {
		reportErrorf(ippcode.ExitCode(err), "%v", err)
	}
	log.Debugf("parsed %d instructions, %d comments", stats.Loc, stats.Comments)

	// Statistics destinations are settled before any of the document
	// reaches stdout, so directive errors never leave a partial XML
	// behind.
	if err := report.Run(args, stats); err != nil {
		reportErrorf(ippcode.ExitCode(err), "%v", err)
	}

	if err := ippcode.WriteXML(stdout, prog, cfg.IndentWidth); err != nil {
		reportErrorf(ippcode.ExitCode(err), "%v", err)
	}
}

func main() {
	atexit.Register(func() { stdout.Flush() })

	// A user interrupt terminates the whole run immediately with its
	// own exit code; the buffered document is dropped, never truncated.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		os.Exit(ippcode.ExitInterrupt)
	}()

	if err := rootCmd.Execute(); err != nil {
		reportErrorf(ippcode.ExitParam, "%v", err)
	}
	atexit.Exit(0)
}
