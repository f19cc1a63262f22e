package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-lending/library/internal/auth"
	cb "github.com/Astemirdum/library-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/library-lending/pkg/logger"
	"github.com/Astemirdum/library-lending/pkg/postgres"
	"github.com/Astemirdum/library-lending/pkg/redis"
	"github.com/Astemirdum/library-lending/pkg/tracing"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" envconfig:"SESSION_TTL" default:"1h"`
}

// Admin is the account ensured at startup; empty Email disables it.
type Admin struct {
	Email    string `envconfig:"ADMIN_EMAIL"`
	Name     string `envconfig:"ADMIN_NAME" default:"admin"`
	Password string `envconfig:"ADMIN_PASSWORD" json:"-"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Redis    redis.Config
	Breaker  cb.Config
	Session  Session
	Argon2   auth.Params
	Tracing  tracing.Config
	Admin    Admin
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set fallbacks that the
// environment may override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
