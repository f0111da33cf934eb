package config

import (
	"flag"
	"os"

	"github.com/dpetrovs/userdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   origin of the backend server (default from Config)
//	-p int      1-based page the directory opens on
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendOrigin, "a", cfg.BackendOrigin, "origin of the backend server")
	pageStart := fs.Int("p", cfg.PageStart, "page the directory opens on")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *pageStart > 0 {
		cfg.PageStart = *pageStart
	}
}
