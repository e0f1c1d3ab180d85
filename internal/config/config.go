// Package config loads process configuration once at startup into an
// explicit object passed to the components that need it.
package config

import "github.com/spf13/viper"

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds every process-wide setting.
type Config struct {
	AppPort string

	StorageDriver string
	MongoURL      string
	DBName        string
	DatabaseDSN   string // sqlite path or postgres DSN, per StorageDriver

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	OrderNotifyEmail string

	RabbitMQURL string // empty disables event publishing
}

// Load reads configuration from environment variables with the storefront's
// defaults.
func Load() Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORAGE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "airstore")
	v.SetDefault("DATABASE_DSN", "airstore.db")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GMAIL_USER", "noreply@airstore.com")
	v.SetDefault("GMAIL_PASS", "")
	v.SetDefault("ORDER_NOTIFY_EMAIL", "chantella.off@gmail.com")
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	return Config{
		AppPort:          v.GetString("APP_PORT"),
		StorageDriver:    v.GetString("STORAGE_DRIVER"),
		MongoURL:         v.GetString("MONGO_URL"),
		DBName:           v.GetString("DB_NAME"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		SMTPHost:         v.GetString("SMTP_HOST"),
		SMTPPort:         v.GetInt("SMTP_PORT"),
		SMTPUser:         v.GetString("GMAIL_USER"),
		SMTPPassword:     v.GetString("GMAIL_PASS"),
		OrderNotifyEmail: v.GetString("ORDER_NOTIFY_EMAIL"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
	}
}
