package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/PrinceSD2/lms-sub001/internal/infra/database"
	"github.com/PrinceSD2/lms-sub001/internal/infra/http/handlers"
	"github.com/PrinceSD2/lms-sub001/internal/infra/http/middleware"
	"github.com/PrinceSD2/lms-sub001/internal/infra/logger"
	"github.com/PrinceSD2/lms-sub001/internal/infra/mail"
	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
	"github.com/PrinceSD2/lms-sub001/internal/infra/worker"
	"github.com/PrinceSD2/lms-sub001/internal/usecase"
)

func main() {
	godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer log.Sync()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal("rabbitmq connection failed", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	eventRepo := database.NewStatusEventRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@lms.local"),
		os.Getenv("LEAD_ALERTS_TO"),
	)

	// Background workers
	alertWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, log)
	go alertWorker.Start(queue.QueueName)

	sweeper := worker.NewFollowUpSweeper(db, log)
	go sweeper.Start(context.Background())

	// Use cases
	createUC := usecase.NewCreateLeadUseCase(leadRepo, eventRepo, producer, log)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, eventRepo, log)

	// Handlers
	leadHandler := handlers.NewLeadHandler(createUC, listUC, statusUC, leadRepo, eventRepo, log)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.CreateLead)
		r.Get("/", leadHandler.ListLeads)
		r.Get("/{id}", leadHandler.GetLead)
		r.Patch("/{id}/status", leadHandler.UpdateStatus)
		r.Get("/{id}/history", leadHandler.GetHistory)
	})

	port := ":" + envOr("PORT", "8080")
	log.Info("lead management API listening", zap.String("port", port))
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
