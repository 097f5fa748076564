package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config configuración del servicio, cargada de variables de entorno
type Config struct {
	ServerPort string `mapstructure:"PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED"`

	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`
	KafkaEnabled bool   `mapstructure:"KAFKA_ENABLED"`

	PrometheusEnabled bool `mapstructure:"PROMETHEUS_ENABLED"`

	CatalogRefreshSeconds int `mapstructure:"CATALOG_REFRESH_SECONDS"`
	CartTTLHours          int `mapstructure:"CART_TTL_HOURS"`
}

// Load carga la configuración desde el entorno con defaults razonables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pos_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "pos.sales.completed")
	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("PROMETHEUS_ENABLED", false)
	v.SetDefault("CATALOG_REFRESH_SECONDS", 30)
	v.SetDefault("CART_TTL_HOURS", 24)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}

// PostgresDSN arma el string de conexión a Postgres
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// KafkaBrokerList separa la lista de brokers
func (c *Config) KafkaBrokerList() []string {
	return strings.Split(c.KafkaBrokers, ",")
}
