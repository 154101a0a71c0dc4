package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-cms/internal/infra/http/handlers"
	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/infra/mail"
	"github.com/xavierca1/lead-cms/internal/infra/queue"
	"github.com/xavierca1/lead-cms/internal/infra/worker"
	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/store"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Stores, seeded with the demo dataset
	leads := store.NewLeadStore(store.SeedLeads())
	proposals := store.NewProposalStore(store.SeedProposals())
	products := store.NewProductStore(store.SeedProducts())
	spareParts := store.NewSparePartStore(store.SeedSpareParts())
	users := store.NewUserStore(store.SeedUsers())

	if raw := os.Getenv("MAX_ATTACHMENTS"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			leads.SetAttachmentLimit(limit)
			proposals.SetAttachmentLimit(limit)
		}
	}

	// 2. Session: durable single-row sqlite record
	sessionDB, err := session.OpenSQLiteStore(envOr("SESSION_DB_PATH", "session.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer sessionDB.Close()

	sessions := session.NewManager(users, store.SeedCredentials(), sessionDB)

	// 3. RabbitMQ is optional: without a broker assignments still work, only
	// the notification emails are skipped.
	var rabbitMQ *queue.RabbitMQ
	var producer *queue.RabbitMQProducer
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			envOr("RABBITMQ_USER", "guest"), envOr("RABBITMQ_PASS", "guest"),
			host, envOr("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	} else {
		log.Println("⚠️ RABBITMQ_HOST not set, notifications disabled")
	}

	// 4. Mail + workers
	if producer != nil {
		mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			envOr("MAIL_FROM", "noreply@leadcms.local"),
		)

		notifyWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go notifyWorker.Start(queue.QueueName)

		reminderWorker := worker.NewReminderWorker(leads, users, producer)
		go reminderWorker.Start(context.Background())
	}

	// 5. UseCases
	var queueProducer usecase.QueueProducerInterface
	if producer != nil {
		queueProducer = producer
	}
	assignLeadUC := usecase.NewAssignLeadUseCase(leads, users, queueProducer)
	assignProposalUC := usecase.NewAssignProposalUseCase(proposals, users, queueProducer)

	// 6. Handlers
	authHandler := handlers.NewAuthHandler(sessions)
	leadHandler := handlers.NewLeadHandler(leads, products, spareParts, sessions, assignLeadUC)
	proposalHandler := handlers.NewProposalHandler(proposals, products, spareParts, sessions, assignProposalUC)
	productHandler := handlers.NewProductHandler(products)
	sparePartHandler := handlers.NewSparePartHandler(spareParts)
	userHandler := handlers.NewUserHandler(users)
	reportHandler := handlers.NewReportHandler(leads, proposals, users)
	dashboardHandler := handlers.NewDashboardHandler(leads, proposals, users)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(sessionDB, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(sessionDB, nil)
	}

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))

		r.Get("/auth/me", authHandler.Me)
		r.Get("/auth/navigation", authHandler.Navigation)
		r.Get("/dashboard", dashboardHandler.Summary)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.List)
			r.Post("/", leadHandler.Create)
			r.Get("/{id}", leadHandler.Get)
			r.Put("/{id}", leadHandler.Update)
			r.Delete("/{id}", leadHandler.Delete)
			r.Post("/{id}/memos", leadHandler.AddMemo)
			r.Post("/{id}/follow-ups", leadHandler.AddFollowUp)
			r.Post("/{id}/assign", leadHandler.Assign)
			r.Post("/{id}/attachments", leadHandler.AddAttachments)
			r.Get("/{id}/product", leadHandler.Product)
			r.Get("/{id}/spare-parts", leadHandler.SparePartsList)
		})

		r.Route("/proposals", func(r chi.Router) {
			r.Use(middleware.RequireSection(sessions, usecase.SectionProposals))
			r.Get("/", proposalHandler.List)
			r.Post("/", proposalHandler.Create)
			r.Get("/{id}", proposalHandler.Get)
			r.Put("/{id}", proposalHandler.Update)
			r.Delete("/{id}", proposalHandler.Delete)
			r.Post("/{id}/follow-ups", proposalHandler.AddFollowUp)
			r.Post("/{id}/assign", proposalHandler.Assign)
			r.Post("/{id}/attachments", proposalHandler.AddAttachments)
			r.Get("/{id}/product", proposalHandler.Product)
			r.Get("/{id}/spare-parts", proposalHandler.SparePartsList)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.RequireSection(sessions, usecase.SectionProducts))
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/spare-parts", func(r chi.Router) {
			r.Use(middleware.RequireSection(sessions, usecase.SectionSpareParts))
			r.Get("/", sparePartHandler.List)
			r.Post("/", sparePartHandler.Create)
			r.Get("/{id}", sparePartHandler.Get)
			r.Put("/{id}", sparePartHandler.Update)
			r.Delete("/{id}", sparePartHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireSection(sessions, usecase.SectionUsers))
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequireSection(sessions, usecase.SectionReports))
			r.Get("/leads.csv", reportHandler.LeadsCSV)
			r.Get("/proposals.csv", reportHandler.ProposalsCSV)
		})
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Lead CMS API running on port %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
