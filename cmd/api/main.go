package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anvayahq/anvaya-crm/internal/infra/database"
	"github.com/anvayahq/anvaya-crm/internal/infra/http/handlers"
	"github.com/anvayahq/anvaya-crm/internal/infra/http/middleware"
	"github.com/anvayahq/anvaya-crm/internal/infra/mail"
	"github.com/anvayahq/anvaya-crm/internal/infra/queue"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	agentRepo := database.NewAgentRepository(db)
	leadRepo := database.NewLeadRepository(db)
	commentRepo := database.NewCommentRepository(db)
	tagRepo := database.NewTagRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@anvaya.io"),
	)

	// Worker: consumes lead-closed events and notifies the owning agent.
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// UseCases
	agentUC := usecase.NewAgentUseCase(agentRepo, leadRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo, agentRepo, producer)
	commentUC := usecase.NewCommentUseCase(commentRepo, leadRepo, agentRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)
	reportUC := usecase.NewReportUseCase(leadRepo, agentRepo)

	// Handlers
	agentHandler := handlers.NewAgentHandler(agentUC)
	leadHandler := handlers.NewLeadHandler(leadUC)
	commentHandler := handlers.NewCommentHandler(commentUC)
	tagHandler := handlers.NewTagHandler(tagUC)
	reportHandler := handlers.NewReportHandler(reportUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Anvaya CRM backend"))
	})

	r.Get("/agents", agentHandler.HandleList)
	r.Post("/agents", agentHandler.HandleCreate)
	r.Put("/agents", agentHandler.HandleUpdate)
	r.Delete("/agents", agentHandler.HandleDelete)

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Put("/leads", leadHandler.HandleUpdate)
	r.Delete("/leads", leadHandler.HandleDelete)

	r.Get("/comments", commentHandler.HandleList)
	r.Post("/comments", commentHandler.HandleCreate)
	r.Put("/comments", commentHandler.HandleUpdate)
	r.Delete("/comments", commentHandler.HandleDelete)

	r.Get("/tags", tagHandler.HandleList)
	r.Post("/tags", tagHandler.HandleCreate)

	r.Get("/report/last-week", reportHandler.HandleLastWeek)
	r.Get("/report/pipeline", reportHandler.HandlePipeline)
	r.Get("/report/closed-by-agent", reportHandler.HandleClosedByAgent)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "3000")
	log.Printf("Anvaya CRM backend listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
