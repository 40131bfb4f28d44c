package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Redis      Redis
	Session    Session
	Uploads    Uploads
	Sweep      Sweep
	Prometheus Prometheus
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Session struct {
	CookieName string
	TTL        time.Duration
}

type Uploads struct {
	Dir     string
	MaxSize int64
}

type Sweep struct {
	Interval time.Duration
	MaxAge   time.Duration
}

type Prometheus struct {
	Address string
	Port    int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "board-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "lostnfound")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("session.ttl", "168h")

	viper.SetDefault("uploads.dir", "web/static/uploads")
	viper.SetDefault("uploads.max_size", 10<<20)

	viper.SetDefault("sweep.interval", "24h")
	viper.SetDefault("sweep.max_age", "720h")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Session: Session{
			CookieName: viper.GetString("session.cookie_name"),
			TTL:        viper.GetDuration("session.ttl"),
		},
		Uploads: Uploads{
			Dir:     viper.GetString("uploads.dir"),
			MaxSize: viper.GetInt64("uploads.max_size"),
		},
		Sweep: Sweep{
			Interval: viper.GetDuration("sweep.interval"),
			MaxAge:   viper.GetDuration("sweep.max_age"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
	}

	return config
}
