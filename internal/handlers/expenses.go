package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ledgerbot/internal/models"
)

// ListExpenses handles GET /api/expenses?owner=...&limit=...
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		http.Error(w, "owner is required", http.StatusBadRequest)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	expenses, err := h.repo.ListExpenses(owner, limit, 0)
	if err != nil {
		http.Error(w, "Failed to load expenses", http.StatusInternalServerError)
		return
	}

	views := make([]models.ExpenseView, 0, len(expenses))
	for i := range expenses {
		views = append(views, expenses[i].ToView())
	}

	respondJSON(w, http.StatusOK, views)
}

// TotalExpenses handles GET /api/expenses/total?owner=...&from=...&to=...
func (h *Handler) TotalExpenses(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		http.Error(w, "owner is required", http.StatusBadRequest)
		return
	}

	total, err := h.repo.TotalAmount(owner, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "Failed to compute total", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// DeleteExpense handles DELETE /api/expenses/{id}?owner=...
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		http.Error(w, "owner is required", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid expense id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteExpense(owner, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete expense", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
