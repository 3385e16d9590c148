package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev_secret_for_demo"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds the bearer token, not the stored session: the
	// session keys persist until logout.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// StorageBackend selects the backing store: memory, redis, or mongo.
	StorageBackend string `env:"STORAGE_BACKEND, default=memory"`

	// CredentialScheme selects how registered passwords are stored:
	// plain (compatibility default) or bcrypt.
	CredentialScheme string `env:"CREDENTIAL_SCHEME, default=plain"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=library_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
