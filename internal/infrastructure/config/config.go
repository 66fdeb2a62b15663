package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/fiberops/subcore/internal/shared/config"
)

const envPrefix = "SUBCORE"

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	AAA          sharedConfig.AAAConfig          `mapstructure:"aaa"`
	Provisioning sharedConfig.ProvisioningConfig `mapstructure:"provisioning"`
}

// defaults doubles as the list of keys viper binds to SUBCORE_ variables, so
// every key that may come from the environment needs an entry here.
var defaults = map[string]any{
	"server.host":     "0.0.0.0",
	"server.port":     8080,
	"server.mode":     "debug",
	"server.timezone": "Asia/Manila",

	"database.host":              "localhost",
	"database.port":              3306,
	"database.username":          "root",
	"database.password":          "password",
	"database.database":          "subcore_dev",
	"database.max_idle_conns":    10,
	"database.max_open_conns":    100,
	"database.conn_max_lifetime": 60,

	"logger.level":       "info",
	"logger.format":      "console",
	"logger.output_path": "stdout",

	"auth.password.bcrypt_cost": 12,
	"auth.operator.secret":      "",
	"auth.operator.require":     false,

	"redis.enabled":  false,
	"redis.host":     "localhost",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"aaa.scheme":          "https",
	"aaa.host":            "",
	"aaa.port":            443,
	"aaa.username":        "",
	"aaa.password":        "",
	"aaa.timeout_seconds": 5,
	"aaa.disconnect_mode": "rest",
	"aaa.radius_secret":   "",
	"aaa.radius_nas_addr": "",

	"provisioning.username_retry_limit":        20,
	"provisioning.lock_ttl_seconds":            30,
	"provisioning.command_rate_limit":          120,
	"provisioning.command_rate_window_seconds": 60,
}

// Load reads configPath, or config.yaml from the usual configs directories
// when configPath is empty. SUBCORE_ variables override the file, for example
// SUBCORE_AAA_HOST for aaa.host. A known env name forces the gin mode.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range []string{"./configs", "../configs", "../../configs"} {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if mode := modeForEnv(env); mode != "" {
		v.Set("server.mode", mode)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// validate rejects values that would only fail later at first use.
func (c *Config) validate() error {
	switch c.AAA.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("aaa.scheme must be http or https, got %q", c.AAA.Scheme)
	}
	switch c.AAA.DisconnectMode {
	case "rest", "radius":
	default:
		return fmt.Errorf("aaa.disconnect_mode must be rest or radius, got %q", c.AAA.DisconnectMode)
	}
	if c.AAA.DisconnectMode == "radius" && (c.AAA.RadiusSecret == "" || c.AAA.RadiusNASAddr == "") {
		return fmt.Errorf("aaa.disconnect_mode radius needs aaa.radius_secret and aaa.radius_nas_addr")
	}
	if c.Provisioning.UsernameRetryLimit < 1 {
		return fmt.Errorf("provisioning.username_retry_limit must be positive")
	}
	if c.Provisioning.LockTTLSeconds < 1 {
		return fmt.Errorf("provisioning.lock_ttl_seconds must be positive")
	}
	return nil
}

// modeForEnv maps a deployment environment name to a gin mode. Unknown
// names leave the configured mode untouched.
func modeForEnv(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "development", "dev", "debug":
		return "debug"
	case "test", "testing":
		return "test"
	default:
		return ""
	}
}
