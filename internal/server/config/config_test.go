package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 10, c.BcryptCost)
	assert.True(t, c.SeedData)
	assert.Equal(t, "admin", c.AdminUsername)
	assert.Empty(t, c.AdminPasswordHash)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.False(t, c.SecureCookie)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(envPort, "")

	c, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_http": ":7000",
		"log_level":          "warn",
	})
	t.Setenv(envHTTPAddr, ":6000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "text")

	os.Args = []string{"testbin", "-c", path, "-a", ":8000"}

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", c.EndpointAddrHTTP, "flag beats json and env")
	assert.Equal(t, "warn", c.LogLevel, "json beats env")
	assert.Equal(t, "text", c.LogFormat, "env beats defaults")
}

func TestLoadConfig_Errors(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("bad env", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(envBcryptCost, "ten")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "env config")
	})

	t.Run("missing json file", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/nonexistent/cfg.json"}

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "json config")
	})

	t.Run("bad flag value", func(t *testing.T) {
		os.Args = []string{"testbin", "-b", "many"}

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "flags")
	})
}

func TestLoadConfig_SubMinuteTTLFromEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(envSessionTTL, "90s")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, c.SessionTTL)
}
