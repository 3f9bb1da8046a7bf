package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	envHTTPAddr      = "BANKPORTAL_HTTP_ADDR"
	envPort          = "PORT"
	envGRPCAddr      = "BANKPORTAL_GRPC_ADDR"
	envSecretKey     = "BANKPORTAL_SECRET_KEY"
	envSessionTTL    = "BANKPORTAL_SESSION_TTL"
	envBcryptCost    = "BANKPORTAL_BCRYPT_COST"
	envSeedData      = "BANKPORTAL_SEED_DATA"
	envAdminUsername = "BANKPORTAL_ADMIN_USERNAME"
	envAdminPassword = "BANKPORTAL_ADMIN_PASSWORD_HASH"
	envLogLevel      = "BANKPORTAL_LOG_LEVEL"
	envLogFormat     = "BANKPORTAL_LOG_FORMAT"
	envSecureCookie  = "BANKPORTAL_SECURE_COOKIE"
)

// loadEnvFile loads the dotenv file named by -e/-env, or ./.env when present.
// Variables already set in the process environment win over the file.
func loadEnvFile() error {
	path := flagx.EnvFileFlags()
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	return godotenv.Load(path)
}

// parseEnv overlays values from environment variables. PORT is honoured for
// the HTTP address unless BANKPORTAL_HTTP_ADDR is set.
func parseEnv(config *Config) error {
	if err := loadEnvFile(); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(envPort); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	setString(&config.EndpointAddrHTTP, envHTTPAddr)
	setString(&config.EndpointAddrGRPC, envGRPCAddr)
	setString(&config.SecretKey, envSecretKey)
	setString(&config.AdminUsername, envAdminUsername)
	setString(&config.AdminPasswordHash, envAdminPassword)
	setString(&config.LogLevel, envLogLevel)
	setString(&config.LogFormat, envLogFormat)

	if v, ok := lookup(envSessionTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		config.SessionTTL = d
	}
	if v, ok := lookup(envBcryptCost); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		config.BcryptCost = n
	}
	if v, ok := lookup(envSeedData); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		config.SeedData = b
	}
	if v, ok := lookup(envSecureCookie); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		config.SecureCookie = b
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}
