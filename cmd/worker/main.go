package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/unclebandit/recruitbase-backend/internal/config"
	"github.com/unclebandit/recruitbase-backend/internal/db"
	"github.com/unclebandit/recruitbase-backend/internal/model"
	"github.com/unclebandit/recruitbase-backend/internal/queue"
	"github.com/unclebandit/recruitbase-backend/internal/repository"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    cfg := config.Load()
    database := db.Init(cfg)

    auditRepo := &repository.ExportAuditRepository{DB: database}

    // Connect to RabbitMQ
    conn, err := amqp.Dial(cfg.AMQPURL)
    if err != nil {
        log.Fatal("Failed to connect to RabbitMQ:", err)
    }
    defer conn.Close()

    ch, err := conn.Channel()
    if err != nil {
        log.Fatal("Failed to open a channel:", err)
    }
    defer ch.Close()

    q, err := ch.QueueDeclare(
        queue.ExportsTopic, // name
        true,               // durable
        false,              // delete when unused
        false,              // exclusive
        false,              // no-wait
        nil,                // arguments
    )
    if err != nil {
        log.Fatal("Failed to declare queue:", err)
    }

    msgs, err := ch.Consume(
        q.Name,
        "",
        false, // autoAck = false for reliability
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        log.Fatal("Failed to register consumer:", err)
    }

    forever := make(chan bool)

    go func() {
        for d := range msgs {
            var audit model.ExportAudit
            if err := json.Unmarshal(d.Body, &audit); err != nil {
                log.Println("Invalid audit event:", err)
                d.Ack(false)
                continue
            }

            if err := auditRepo.Create(&audit); err != nil {
                log.Println("Failed to persist export audit:", err)
                // Retry logic: requeue up to 3 times
                var retryCount int
                if d.Headers["x-retry-count"] != nil {
                    retryCount = d.Headers["x-retry-count"].(int)
                }
                if retryCount < 3 {
                    d.Nack(false, true) // requeue
                    continue
                }
            }

            d.Ack(false)
        }
    }()

    log.Println("Worker running, waiting for export events...")
    <-forever
}
