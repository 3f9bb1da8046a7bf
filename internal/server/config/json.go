package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/flagx"
)

// duration unmarshals either a Go duration string ("24h", "90m") or an
// integer number of nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// JsonConfig is the on-disk shape of the configuration file. Absent fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	EndpointAddrHTTP  string    `json:"endpoint_addr_http"`
	EndpointAddrGRPC  string    `json:"endpoint_addr_grpc"`
	SecretKey         string    `json:"secret_key"`
	SessionTTL        *duration `json:"session_ttl"`
	BcryptCost        *int      `json:"bcrypt_cost"`
	SeedData          *bool     `json:"seed_data"`
	AdminUsername     string    `json:"admin_username"`
	AdminPasswordHash string    `json:"admin_password_hash"`
	LogLevel          string    `json:"log_level"`
	LogFormat         string    `json:"log_format"`
	SecureCookie      *bool     `json:"secure_cookie"`
}

// parseJson loads the file named by -c or -config into config. Without the
// flag nothing is loaded.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.AdminUsername, c.AdminUsername)
	overlay(&config.AdminPasswordHash, c.AdminPasswordHash)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogFormat, c.LogFormat)

	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.SeedData != nil {
		config.SeedData = *c.SeedData
	}
	if c.SecureCookie != nil {
		config.SecureCookie = *c.SecureCookie
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
