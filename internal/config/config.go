package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Logger      LoggerConfig
	DB          DBConfig
	Server      ServerConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Cache       CacheConfig
	Leaderboard LeaderboardConfig
}

type LoggerConfig struct {
	Env   string
	Level string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	// Driver is "oracle" (go-ora, pure Go) or "godror" (OCI, needs cgo).
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
}

// CacheConfig holds TTLs for the Redis-backed views.
type CacheConfig struct {
	AnswerKeyTTL   time.Duration
	LeaderboardTTL time.Duration
	SessionTTL     time.Duration
}

type LeaderboardConfig struct {
	WeekStart time.Weekday
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("db.driver", "oracle")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.name", "FREEPDB1")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")

	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache.answer_key_ttl", "24h")
	v.SetDefault("cache.leaderboard_ttl", "1m")
	v.SetDefault("cache.session_ttl", "2h")

	v.SetDefault("leaderboard.week_start", "sunday")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Println("No config file found, using defaults and environment")
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	weekStart, err := ParseWeekday(v.GetString("leaderboard.week_start"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Logger: LoggerConfig{
			Env:   v.GetString("env"),
			Level: v.GetString("logger.level"),
		},
		DB: DBConfig{
			Driver:          v.GetString("db.driver"),
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey: v.GetString("jwt.secret_key"),
		},
		Cache: CacheConfig{
			AnswerKeyTTL:   v.GetDuration("cache.answer_key_ttl"),
			LeaderboardTTL: v.GetDuration("cache.leaderboard_ttl"),
			SessionTTL:     v.GetDuration("cache.session_ttl"),
		},
		Leaderboard: LeaderboardConfig{
			WeekStart: weekStart,
		},
	}

	switch cfg.DB.Driver {
	case "oracle", "godror":
	default:
		return nil, fmt.Errorf("unsupported db.driver %q", cfg.DB.Driver)
	}

	return cfg, nil
}

// ParseWeekday accepts English day names, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid leaderboard.week_start %q", s)
}

// GetDSN builds the connection string for the configured driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == "godror" {
		return fmt.Sprintf(`user="%s" password="%s" connectString="%s:%d/%s"`,
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
