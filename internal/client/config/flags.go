package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/resumerag/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   backend base URL
//	-t int      request timeout in seconds
//	-d string   local session database path
//	-l string   log level
//	-f string   log format
//
// args are filtered with flagx.FilterArgs first so -c/-config and unknown
// flags do not break parsing. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
