// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/recruitbase-backend/internal/auth"
	"github.com/unclebandit/recruitbase-backend/internal/config"
	"github.com/unclebandit/recruitbase-backend/internal/controller"
	"github.com/unclebandit/recruitbase-backend/internal/db"
	"github.com/unclebandit/recruitbase-backend/internal/queue"
	"github.com/unclebandit/recruitbase-backend/internal/repository"
	"github.com/unclebandit/recruitbase-backend/internal/service"
	"github.com/unclebandit/recruitbase-backend/internal/storage"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	// Init DB
	database := db.Init(cfg)

	signer, err := storage.NewS3Signer(cfg)
	if err != nil {
		log.Fatalf("failed to init S3 signer: %v", err)
	}

	// Audit events go to RabbitMQ when configured, otherwise stay in-process.
	var q queue.Queue
	if cfg.AMQPURL != "" {
		amqpQueue, err := queue.NewAMQPQueue(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartExportLogSubscriber(memQueue)
		q = memQueue
	}

	applicationRepo := &repository.ApplicationRepository{DB: database}
	candidateRepo := &repository.CandidateRepository{DB: database}

	exportService := &service.ExportService{
		ApplicationRepo: applicationRepo,
		CandidateRepo:   candidateRepo,
		Signer:          signer,
		Queue:           q,
	}

	exportController := &controller.ExportController{
		ExportService: exportService,
		Auth:          auth.NewAuthorizer(cfg.IsDevelopment(), cfg.ExportSecret),
		DefaultRole:   cfg.DefaultRole,
		DefaultBucket: cfg.DefaultBucket,
	}

	r := chi.NewRouter()

	// Export routes
	r.Get("/exports/campaign-applications", exportController.ExportCampaignApplications)
	r.Get("/exports/candidates", exportController.ExportCandidates)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
