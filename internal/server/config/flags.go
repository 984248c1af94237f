package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/resumerag/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-f string   search fixtures file (TOML)
//	-l string   log level
//
// Only the flags listed above are parsed; everything else in args is
// filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(cfg.TokenValidity.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.FixturesPath, "f", cfg.FixturesPath, "search fixtures file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenValidity = time.Duration(*tokenValidity) * time.Minute
		}
	})
}
