package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Port            string        `mapstructure:"port"`
		Env             string        `mapstructure:"env"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		CORSOrigins     []string      `mapstructure:"cors_origins"`
	} `mapstructure:"app"`
	DB struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
		// Name overrides the database of a postgres DSN and prefixes the
		// dynamodb table.
		Name string `mapstructure:"name"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
	AWS struct {
		Region   string `mapstructure:"region"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"aws"`
}

// LoadConfig reads .env and config.yaml from path (both optional), then lets
// environment variables override every key.
func LoadConfig(path string) (cfg Config, err error) {
	if path == "" {
		path = "."
	}

	if err := godotenv.Load(path + "/.env"); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	v.SetDefault("app.port", "8001")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("app.cors_origins", []string{"*"})
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("aws.region", "us-east-1")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.shutdown_timeout", "APP_SHUTDOWN_TIMEOUT")
	v.BindEnv("app.cors_origins", "CORS_ORIGINS")
	v.BindEnv("db.driver", "DB_DRIVER")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.name", "DB_NAME")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.ttl", "REDIS_TTL")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.endpoint", "AWS_ENDPOINT")

	if err = v.Unmarshal(&cfg); err != nil {
		return
	}

	// Comma separated env values arrive as a single element.
	cfg.App.CORSOrigins = splitList(cfg.App.CORSOrigins)
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	return
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
