package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/daware/warmtrack/internal/infra/http/handlers"
	custommw "github.com/daware/warmtrack/internal/infra/http/middleware"
	"github.com/daware/warmtrack/internal/infra/mail"
	"github.com/daware/warmtrack/internal/infra/queue"
	"github.com/daware/warmtrack/internal/infra/storage"
	"github.com/daware/warmtrack/internal/infra/worker"
	"github.com/daware/warmtrack/internal/usecase"
)

func main() {
	godotenv.Load()

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data/prospects.json"
	}

	store, err := storage.Open(dataFile)
	if err != nil {
		log.Fatal(err)
	}

	// Engagement events only flow when a broker is configured.
	var producer usecase.QueueProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// UseCases
	listUC := usecase.NewListProspectsUseCase(store)
	engageUC := usecase.NewEngageProspectUseCase(store, producer)
	importUC := usecase.NewImportProspectsUseCase(store)
	updateUC := usecase.NewUpdateProspectUseCase(store)
	statsUC := usecase.NewProspectStatsUseCase(store)
	exportUC := usecase.NewExportProspectsUseCase(store)

	// Daily due-queue digest, only when mail is configured.
	if host := os.Getenv("MAIL_HOST"); host != "" && os.Getenv("DIGEST_TO") != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		sender := mail.NewEmailSender(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))
		digest := worker.NewDigestWorker(statsUC, sender, os.Getenv("DIGEST_TO"))
		go digest.Start(context.Background())
	}

	// Handlers
	prospectHandler := handlers.NewProspectHandler(listUC, engageUC, updateUC)
	importHandler := handlers.NewImportHandler(importUC)
	statsHandler := handlers.NewStatsHandler(statsUC)
	exportHandler := handlers.NewExportHandler(exportUC)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(store, amqpConn)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(custommw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/api/prospects", prospectHandler.HandleList)
	r.Get("/api/queue", statsHandler.HandleQueue)
	r.Get("/api/stats", statsHandler.HandleStats)
	r.Get("/api/export/csv", exportHandler.HandleExportCSV)
	r.Post("/api/import/urls", importHandler.HandleImportURLs)
	r.Post("/api/import/csv", importHandler.HandleImportRows)
	r.Post("/api/prospects/{id}/engage", prospectHandler.HandleEngage)
	r.Post("/api/prospects/{id}/skip", prospectHandler.HandleSkip)
	r.Put("/api/prospects/{id}", prospectHandler.HandleUpdate)
	r.Delete("/api/prospects/{id}", prospectHandler.HandleDelete)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3847"
	}
	log.Printf("Warming pipeline running at http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
