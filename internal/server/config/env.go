package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"postboard/internal/flagx"
)

// parseEnv overlays Config fields from the process environment.
//
// If an env file path is given via the -c or -env-file flags it is loaded
// first; otherwise a `.env` file in the working directory is loaded when
// present. Existing environment variables always win over file values.
//
// Recognized variables:
//
//	ENDPOINT_ADDR
//	DATABASE_HOSTNAME, DATABASE_PORT, DATABASE_USERNAME,
//	DATABASE_PASSWORD, DATABASE_NAME
//	SECRET_KEY, ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES
func parseEnv(config *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else {
		// optional; missing .env is fine
		_ = godotenv.Load()
	}

	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	overlay(&config.EndpointAddr, "ENDPOINT_ADDR")
	overlay(&config.DatabaseHost, "DATABASE_HOSTNAME")
	overlay(&config.DatabasePort, "DATABASE_PORT")
	overlay(&config.DatabaseUser, "DATABASE_USERNAME")
	overlay(&config.DatabasePassword, "DATABASE_PASSWORD")
	overlay(&config.DatabaseName, "DATABASE_NAME")
	overlay(&config.SecretKey, "SECRET_KEY")
	overlay(&config.Algorithm, "ALGORITHM")

	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}
}
