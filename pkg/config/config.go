package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration loaded from YAML.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Log          LogConfig          `mapstructure:"log"`
	Notification NotificationConfig `mapstructure:"notification"`
	Loan         LoanConfig         `mapstructure:"loan"`
	Report       ReportConfig       `mapstructure:"report"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	Charset         string        `mapstructure:"charset"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// NotificationConfig tunes the loan reminder subsystem.
type NotificationConfig struct {
	// ExpiringWindowDays: a loan due within this many days (inclusive)
	// and not yet due counts as expiring.
	ExpiringWindowDays int           `mapstructure:"expiring_window_days"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
}

type LoanConfig struct {
	DefaultPeriodDays int `mapstructure:"default_period_days"`
}

type ReportConfig struct {
	Title    string `mapstructure:"title"`
	LogoPath string `mapstructure:"logo_path"`
}

// Load reads the config file at configPath.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.mode", "release")
	viper.SetDefault("notification.expiring_window_days", 3)
	viper.SetDefault("notification.sweep_interval", time.Hour)
	viper.SetDefault("notification.cache_ttl", 30*time.Second)
	viper.SetDefault("loan.default_period_days", 14)
	viper.SetDefault("report.title", "Loan report")

	viper.SetEnvPrefix("BIBLIOTECA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)
	return &cfg, nil
}

func normalize(c *Config) {
	if c.Notification.ExpiringWindowDays < 0 {
		c.Notification.ExpiringWindowDays = 3
	}
	if c.Notification.SweepInterval <= 0 {
		c.Notification.SweepInterval = time.Hour
	}
	if c.Notification.CacheTTL <= 0 {
		c.Notification.CacheTTL = 30 * time.Second
	}
	if c.Loan.DefaultPeriodDays <= 0 {
		c.Loan.DefaultPeriodDays = 14
	}
}

// GetDSN builds the MySQL DSN.
func (c *DatabaseConfig) GetDSN() string {
	charset := c.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, charset)
}

// GetRedisAddr builds the Redis address.
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobalConfig installs the process-wide config. Called once in app.Run.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// GetGlobalConfig returns the process-wide config, or an empty Config
// before startup so callers never dereference nil.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalCfg == nil {
		return &Config{}
	}
	return globalCfg
}
