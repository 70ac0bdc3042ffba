package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands. Values come from the
// settings file, overridden by CARTESIAN_* environment variables (for
// example CARTESIAN_SERVER_ADDR), overridden by flags.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr          string        `mapstructure:"addr"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	RenderTimeout time.Duration `mapstructure:"render_timeout"`
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Disabled bool   `mapstructure:"disabled"`
	Dir      string `mapstructure:"dir"`
	RedisURL string `mapstructure:"redis_url"`
	Prefix   string `mapstructure:"prefix"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Formats []string `mapstructure:"formats"`
	Scale   float64  `mapstructure:"scale"`
}

// loadConfig reads settings from path, or from CARTESIAN_CONFIG, or from
// the default settings directory. Only a missing default file is
// tolerated.
func loadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.render_timeout", 20*time.Second)
	v.SetDefault("server.max_body_bytes", int64(4<<20))
	v.SetDefault("cache.disabled", false)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.prefix", "")
	v.SetDefault("render.formats", []string{"svg"})
	v.SetDefault("render.scale", 2.0)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("CARTESIAN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CARTESIAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// config loads the settings for the --config flag.
func (c *CLI) config() (Config, error) {
	return loadConfig(c.configPath)
}

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			printConfig(c.configPath, cfg)
			return nil
		},
	}
}

func printConfig(path string, cfg Config) {
	redis := cfg.Cache.RedisURL
	if redis == "" {
		redis = "-"
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		dir, _ = cacheDir()
	}
	if path == "" {
		settings, _ := configDir()
		path = filepath.Join(settings, "config.toml")
	}

	fmt.Fprintln(stdout, StyleTitle.Render("Settings"))
	printKeyValue("file", path)
	printKeyValue("addr", cfg.Server.Addr)
	printKeyValue("timeouts", fmt.Sprintf("read %s, write %s, render %s", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.RenderTimeout))
	printKeyValue("max body", fmt.Sprintf("%d bytes", cfg.Server.MaxBodyBytes))
	printKeyValue("cache", dir)
	printKeyValue("redis", redis)
	printKeyValue("formats", strings.Join(cfg.Render.Formats, ","))
	printKeyValue("png scale", fmt.Sprintf("%g", cfg.Render.Scale))
}
