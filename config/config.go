package config

import (
	"bubblebrew_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "BubbleBrew_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8084"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:8081"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Store: &structs.StoreConfig{
				Path:         getEnvAsString("STORE_PATH", "bubblebrew.db"),
				ReadTimeout:  getEnvAsTimeDuration("STORE_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("STORE_WRITE_TIMEOUT", 5*time.Second),
			},
			Sync: &structs.SyncConfig{
				Enabled:  getEnvAsBool("SYNC_ENABLED", false),
				Host:     getEnvAsString("SYNC_REDIS_HOST", "localhost"),
				Port:     getEnvAsString("SYNC_REDIS_PORT", "6379"),
				Password: getEnvAsString("SYNC_REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("SYNC_REDIS_DB", 0),
				Channel:  getEnvAsString("SYNC_REDIS_CHANNEL", "pos.changes"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
