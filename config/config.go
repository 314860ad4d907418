package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   Server
	Database Database
	Store    Store
	Log      Log
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string
	Path     string // sqlite file
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
}

type Store struct {
	// LockTimeout bounds the wait for the writer gate. Zero waits until the
	// caller's context is done.
	LockTimeout time.Duration
}

type Log struct {
	Level string
}

func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load reads .env from the working directory, then the environment, then
// command-line flags, each overriding the previous.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "tracking.db")
	v.SetDefault("STORE_LOCK_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")

	flags := pflag.NewFlagSet("tally", pflag.ContinueOnError)
	flags.String("port", "", "HTTP listen port")
	flags.String("db-driver", "", "database driver (sqlite or postgres)")
	flags.String("db-path", "", "sqlite database file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	for key, flag := range map[string]string{
		"SERVER_PORT":     "port",
		"DATABASE_DRIVER": "db-driver",
		"DATABASE_PATH":   "db-path",
		"LOG_LEVEL":       "log-level",
	} {
		// Only explicitly set flags override, so an empty flag default never
		// masks the .env value.
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Store.LockTimeout = v.GetDuration("STORE_LOCK_TIMEOUT")
	config.Log.Level = v.GetString("LOG_LEVEL")

	switch config.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.Database.Driver)
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
