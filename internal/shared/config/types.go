package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetAddr returns host:port without credentials, for logs.
func (d *DatabaseConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.GetAddr(), d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// OperatorTokenConfig configures verification of CRM-issued operator tokens.
type OperatorTokenConfig struct {
	Secret  string `mapstructure:"secret"`
	Require bool   `mapstructure:"require"`
}

type AuthConfig struct {
	Password PasswordConfig      `mapstructure:"password"`
	Operator OperatorTokenConfig `mapstructure:"operator"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AAAConfig is the static fallback for the AAA management server settings.
// Rows of the aaa system settings category take precedence.
type AAAConfig struct {
	Scheme         string `mapstructure:"scheme"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	DisconnectMode string `mapstructure:"disconnect_mode"`
	RadiusSecret   string `mapstructure:"radius_secret"`
	RadiusNASAddr  string `mapstructure:"radius_nas_addr"`
}

type ProvisioningConfig struct {
	UsernameRetryLimit int `mapstructure:"username_retry_limit"`
	LockTTLSeconds     int `mapstructure:"lock_ttl_seconds"`
	// Commands per operator and client IP per window. Needs redis.
	CommandRateLimit         int `mapstructure:"command_rate_limit"`
	CommandRateWindowSeconds int `mapstructure:"command_rate_window_seconds"`
}
