package config

import (
	"flag"
	"os"
	"time"

	"postboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-H string   database host
//	-P string   database port
//	-U string   database user
//	-W string   database password
//	-D string   database name
//	-s string   JWT HMAC secret key
//	-g string   JWT signing algorithm (e.g., "HS256")
//	-t int      access token validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The duration
// flag is accepted as an integer in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-H", "-P", "-U", "-W", "-D", "-s", "-g", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseHost, "H", config.DatabaseHost, "database host")
	fs.StringVar(&config.DatabasePort, "P", config.DatabasePort, "database port")
	fs.StringVar(&config.DatabaseUser, "U", config.DatabaseUser, "database user")
	fs.StringVar(&config.DatabasePassword, "W", config.DatabasePassword, "database password")
	fs.StringVar(&config.DatabaseName, "D", config.DatabaseName, "database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.Algorithm, "g", config.Algorithm, "JWT signing algorithm")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
