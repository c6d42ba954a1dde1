package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
	// ProtectUsers gates the /users routes behind bearer auth.
	// Register/login stay public either way.
	ProtectUsers bool `mapstructure:"protect_users"`
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated file output in addition to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Hash struct {
	// Algorithm selects the password hasher: "sha256" or "bcrypt".
	Algorithm string
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	Hash  Hash
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

// Load reads the YAML config at path, falling back to the local
// default file. Callers resolve CONFIG_PATH before calling.
func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = "./configs/config.local.yaml"
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "user-api")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "127.0.0.1")
	v.SetDefault("app.http.port", 8000)
	v.SetDefault("jwt.issuer", "user-api")
	v.SetDefault("jwt.accesstokenttlmin", 24*60)
	v.SetDefault("hash.algorithm", "sha256")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:app.db")
	v.SetDefault("db.automigrate", true)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
