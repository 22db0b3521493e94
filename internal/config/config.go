package config

import (
    "os"
    "strings"
)

// Config carries everything the service reads from the environment.
// It is loaded once in main and injected; nothing else touches os.Getenv.
type Config struct {
    Env          string // "development" disables the export secret check
    Port         string
    ExportSecret string

    DefaultRole   string
    DefaultBucket string

    DBUser     string
    DBPassword string
    DBHost     string
    DBPort     string
    DBName     string

    S3Endpoint  string
    S3Region    string
    S3AccessKey string
    S3SecretKey string

    AMQPURL string
}

func Load() *Config {
    return &Config{
        Env:          getenv("APP_ENV", "production"),
        Port:         getenv("PORT", "8080"),
        ExportSecret: os.Getenv("EXPORT_SECRET"),

        DefaultRole:   getenv("EXPORT_DEFAULT_ROLE", "elektriker"),
        DefaultBucket: getenv("EXPORT_DEFAULT_BUCKET", "candidate-cvs"),

        DBUser:     os.Getenv("DB_USER"),
        DBPassword: os.Getenv("DB_PASSWORD"),
        DBHost:     os.Getenv("DB_HOST"),
        DBPort:     getenv("DB_PORT", "5432"),
        DBName:     os.Getenv("DB_NAME"),

        S3Endpoint:  os.Getenv("S3_ENDPOINT"),
        S3Region:    getenv("S3_REGION", "eu-north-1"),
        S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
        S3SecretKey: os.Getenv("S3_SECRET_KEY"),

        AMQPURL: os.Getenv("AMQP_URL"),
    }
}

// IsDevelopment reports whether the service runs with the auth gate disabled.
func (c *Config) IsDevelopment() bool {
    return strings.EqualFold(c.Env, "development")
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
