package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ooh-analytics/internal/core/domain"
	"ooh-analytics/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the ingestion surface
// (scan, simulate, conversion) and the query surface (stats, series,
// devices, recent scans) plus read-only catalog lookups. It holds a
// ScanUseCase for business logic and a logger for structured logging.
type Handler struct {
	svc        port.ScanUseCase
	billboards []domain.Billboard
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. The billboard
// slice is the read-only reference catalog used for lookups and 404s.
func NewHandler(svc port.ScanUseCase, billboards []domain.Billboard, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, billboards: billboards, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/billboards", h.handleBillboards)
		r.Get("/billboards/{id}", h.handleBillboard)

		r.Post("/scan/{id}", h.handleScan)
		r.Post("/scan/{id}/simulate", h.handleSimulate)
		r.Post("/scan/{id}/conversion", h.handleConversion)
		r.Get("/scans/recent/{id}", h.handleRecentScans)

		r.Get("/stats/overview", h.handleOverview)
		r.Get("/stats/hourly", h.handleHourly)
		r.Get("/stats/daily", h.handleDaily)
		r.Get("/stats/devices", h.handleDevices)
		r.Get("/stats/{id}", h.handleStats)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// findBillboard resolves the {id} path parameter against the catalog.
func (h *Handler) findBillboard(r *http.Request) (domain.Billboard, bool) {
	id := chi.URLParam(r, "id")
	for _, b := range h.billboards {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Billboard{}, false
}

// writeJSON encodes v to the response. Encoding rarely fails; it is
// logged rather than surfaced since the status line is already out.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
