package structs

import "time"

type Config struct {
	Server *ServerConfig
	Cors   *CorsConfig
	Store  *StoreConfig
	Sync   *SyncConfig
}

type ServerConfig struct {
	AppName        string        // BubbleBrew
	Environment    string        // development, production
	Port           string        // :8084
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// StoreConfig configures the embedded order/menu store. Path is a SQLite
// file path; ":memory:" keeps the store in process memory (tests).
type StoreConfig struct {
	Path         string
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

// SyncConfig configures the optional change-event fan-out to secondary
// displays (kitchen screens). Disabled unless Enabled is set.
type SyncConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Channel  string
}
