package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the quoting service.
type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	Migrations  bool
	Seed        bool

	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// Load reads configuration with precedence: environment variable > optional
// config.toml in the working directory > default. A missing config file is not
// an error.
func Load() Config {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("database_dsn", "file:persianas.db")
	v.SetDefault("env", "development")
	v.SetDefault("migrations", false)
	v.SetDefault("seed", false)
	v.SetDefault("read_timeout", 15)
	v.SetDefault("write_timeout", 30)
	v.SetDefault("idle_timeout", 60)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		Port:         v.GetString("port"),
		DatabaseDSN:  v.GetString("database_dsn"),
		Env:          v.GetString("env"),
		Migrations:   v.GetBool("migrations"),
		Seed:         v.GetBool("seed"),
		ReadTimeout:  v.GetInt("read_timeout"),
		WriteTimeout: v.GetInt("write_timeout"),
		IdleTimeout:  v.GetInt("idle_timeout"),
	}
}
