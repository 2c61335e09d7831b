package config

import (
	"flag"
	"os"
	"time"

	"github.com/zaidasim/swadesh/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   session HMAC secret key
//	-t int      session TTL, hours
//	-b string   public base URL for OAuth callbacks
//	-k string   Anthropic API key
//	-m string   upstream model name
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The TTL flag
// is accepted as an integer in hours and converted to a time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b", "-k", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Hours()), "session TTL (in hours)")

	fs.StringVar(&config.BaseURL, "b", config.BaseURL, "public base URL")
	fs.StringVar(&config.AnthropicAPIKey, "k", config.AnthropicAPIKey, "Anthropic API key")
	fs.StringVar(&config.AIModel, "m", config.AIModel, "upstream model name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Hour
}
