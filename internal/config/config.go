// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite file holding
	// the audit trail. Everything else lives in memory.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// SeedPath optionally points at a JSON file used to seed the mock
	// data store. Empty means the built-in seed data is used.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`

	HTTPServer `yaml:"http_server"`
	Policy     `yaml:"policy"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8084".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// Policy collects the mock business-rule knobs. These are stand-ins for
// real business values nobody has decided yet, which is exactly why
// they are configuration and not constants in the services.
type Policy struct {
	// LeaveAutoApproveDays: leave strictly shorter than this many days
	// is approved without review.
	LeaveAutoApproveDays int `yaml:"leave_auto_approve_days" env:"LEAVE_AUTO_APPROVE_DAYS" env-default:"3"`

	// OTPTTL is how long an issued code stays valid.
	OTPTTL time.Duration `yaml:"otp_ttl" env:"OTP_TTL" env-default:"5m"`

	// OTPLength is the number of digits in an issued code.
	OTPLength int `yaml:"otp_length" env:"OTP_LENGTH" env-default:"6"`

	// PaymentLinkTTL sets the expires_at advertised on generated
	// payment links. Display-only: the callback settles regardless,
	// because the only timeout this mock enforces is OTP expiry.
	PaymentLinkTTL time.Duration `yaml:"payment_link_ttl" env:"PAYMENT_LINK_TTL" env-default:"1h"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
