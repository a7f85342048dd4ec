package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"ledgerbot/internal/charts"
	"ledgerbot/internal/database"
)

// Processor interprets one inbound message and always returns a reply string.
type Processor interface {
	Process(ctx context.Context, ownerID, input string) string
}

type Handler struct {
	repo         *database.Repository
	agent        Processor
	charts       *charts.Renderer
	mediaBaseURL string
}

func New(repo *database.Repository, agent Processor, renderer *charts.Renderer, mediaBaseURL string) *Handler {
	return &Handler{
		repo:         repo,
		agent:        agent,
		charts:       renderer,
		mediaBaseURL: mediaBaseURL,
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
