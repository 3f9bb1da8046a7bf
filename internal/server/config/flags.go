package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-g string   gRPC health bind address (e.g. ":50051")
//	-s string   session signing secret
//	-t int      session lifetime, minutes (only applied when given)
//	-b int      bcrypt cost
//	-seed bool  load fixture data (use -seed=false to disable)
//	-u string   seeded admin username
//	-p string   seeded admin password bcrypt hash
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (json, text)
//	-secure-cookie bool  send the session cookie over HTTPS only
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-g", "-s", "-t", "-b", "-seed", "-u", "-p", "-l", "-f", "-secure-cookie",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session signing secret")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.SeedData, "seed", config.SeedData, "load fixture data")
	fs.StringVar(&config.AdminUsername, "u", config.AdminUsername, "seeded admin username")
	fs.StringVar(&config.AdminPasswordHash, "p", config.AdminPasswordHash, "seeded admin password hash")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")
	fs.BoolVar(&config.SecureCookie, "secure-cookie", config.SecureCookie, "secure session cookie")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
	return nil
}
