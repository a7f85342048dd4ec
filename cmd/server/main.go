package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"ledgerbot/internal/agent"
	"ledgerbot/internal/charts"
	"ledgerbot/internal/config"
	"ledgerbot/internal/database"
	"ledgerbot/internal/gateway"
	"ledgerbot/internal/handlers"
	"ledgerbot/internal/llm"
	"ledgerbot/internal/memory"
	"ledgerbot/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	store, err := storage.NewLocalStorage(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	llmClient := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAIAPIKey)
	window := memory.NewWindow(memory.DefaultCapacity)
	gw := gateway.New(db)
	bot := agent.New(llmClient, gw, window, cfg.AgentMaxSteps)
	renderer := charts.NewRenderer(store)

	h := handlers.New(repo, bot, renderer, cfg.MediaBaseURL)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Rendered charts are fetched by the transport over plain HTTP
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir))))

	r.Post("/whatsapp", h.Whatsapp)

	r.Get("/api/expenses", h.ListExpenses)
	r.Get("/api/expenses/total", h.TotalExpenses)
	r.Delete("/api/expenses/{id}", h.DeleteExpense)

	log.Printf("Server starting on http://localhost:%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
