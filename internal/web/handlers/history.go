package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/kozaktomas/beauty-advisor/internal/database"
	"github.com/sirupsen/logrus"
)

const errHistoryDisabled = "history is disabled"

// HistoryHandler serves stored analyses
type HistoryHandler struct {
	store database.AnalysisReader
	log   logrus.FieldLogger
}

// NewHistoryHandler creates a new history handler. A nil store disables
// every endpoint with 404.
func NewHistoryHandler(store database.AnalysisReader, log logrus.FieldLogger) *HistoryHandler {
	return &HistoryHandler{store: store, log: log}
}

// HistoryResponse is a page of stored analyses
type HistoryResponse struct {
	Total    int               `json:"total"`
	Analyses []analysis.Report `json:"analyses"`
}

// List returns the most recent analyses
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusNotFound, errHistoryDisabled)
		return
	}

	limit := constants.DefaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, constants.MaxHistoryLimit)
	}

	stored, err := h.store.List(r.Context(), limit)
	if err != nil {
		h.log.WithError(err).Error("listing analyses failed")
		respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	total, err := h.store.Count(r.Context())
	if err != nil {
		h.log.WithError(err).Error("counting analyses failed")
		respondError(w, http.StatusInternalServerError, "failed to count analyses")
		return
	}

	out := make([]analysis.Report, 0, len(stored))
	for _, a := range stored {
		out = append(out, analysis.FromStored(a))
	}
	respondJSON(w, http.StatusOK, HistoryResponse{Total: total, Analyses: out})
}

// Get returns a single analysis by id
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusNotFound, errHistoryDisabled)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	a, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.log.WithError(err).WithField("id", id).Error("loading analysis failed")
		respondError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if a == nil {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}
	respondJSON(w, http.StatusOK, analysis.FromStored(*a))
}
