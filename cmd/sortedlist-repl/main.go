// Command sortedlist-repl is an interactive shell over a sorted multiset of integers.
//
// Usage:
//
//	sortedlist-repl [-seed values.yaml] [-version]
//
// Logging is configured with SORTEDLIST_LOG_LEVEL and SORTEDLIST_LOG_JSON and
// goes to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amp-labs/sortedlist/build"
	"github.com/amp-labs/sortedlist/cli"
	"github.com/amp-labs/sortedlist/logger"
	"github.com/amp-labs/sortedlist/repl"
)

func main() {
	seed := flag.String("seed", "", "YAML or JSON array file with initial values")
	version := flag.Bool("version", false, "print build information and exit")
	flag.Parse()

	if *version {
		fmt.Println(build.Read())

		return
	}

	log := logger.ConfigureLogging("sortedlist-repl")
	ctx := logger.With(context.Background(), log)

	session := repl.NewSession(ctx, os.Stdout, cli.NewTerminal())
	log.Debug("session started", "session", session.ID(), "version", build.Read().Version)

	if *seed != "" {
		if _, err := session.Load(*seed); err != nil {
			log.Error("failed to load seed file", "path", *seed, "error", err)
			os.Exit(1)
		}
	}

	fmt.Println("sortedlist REPL. Type 'help' for available commands, 'quit' to exit.")

	if err := session.Run(ctx); err != nil {
		log.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
