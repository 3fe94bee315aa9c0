package config

import (
	"hearts-client/internal/util"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HEARTS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HEARTS_PLAYER_PASSWORD", "fromenv")
	defer clear2()

	config.loaded = false

	a := assert.New(t)
	cfg := Instance()
	a.Equal("FlyingBirds", cfg.Player.Name)
	a.Equal("fromenv", cfg.Player.Password)
	a.Equal("hearts.example.com:8080", cfg.Server.Host)
	a.Equal(time.Millisecond*500, cfg.Server.PollInterval)
	a.Equal(time.Second*5, cfg.Server.RetryInterval, "defaults are kept")
	a.Equal("simple", cfg.Strategy)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("/tmp/hearts", cfg.GameLog.Dir)

	// ensure that it's only loaded once
	_ = os.Setenv("HEARTS_PLAYER_PASSWORD", "changed")
	// ensure we aren't using a pointer
	cfg.Player.Password = "bad"
	cfg = Instance()
	a.Equal("fromenv", cfg.Player.Password)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HEARTS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("HEARTS_SERVER_HOST", "example.com")
	defer clear2()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "example.com", cfg.Server.Host)
	assert.Equal(t, "defensive", cfg.Strategy)
	assert.Equal(t, time.Second, cfg.Server.PollInterval)
	assert.Equal(t, "./sql", cfg.MigrationsPath)
	assert.False(t, cfg.Repeat)
}
