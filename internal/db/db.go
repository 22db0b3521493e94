package db

import (
    "database/sql"
    "fmt"
    _ "github.com/lib/pq"
    "log"

    "github.com/unclebandit/recruitbase-backend/internal/config"
)

func Init(cfg *config.Config) *sql.DB {
    log.Println("DB_USER:", cfg.DBUser)
    log.Println("DB_NAME:", cfg.DBName)
    log.Println("DB_HOST:", cfg.DBHost)

    dsn := fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
    )

    db, err := sql.Open("postgres", dsn)
    if err != nil {
        log.Fatalf("failed to connect to DB: %v", err)
    }

    if err = db.Ping(); err != nil {
        log.Fatalf("failed to ping DB: %v", err)
    }

    log.Println("✅ Connected to database")
    return db
}
