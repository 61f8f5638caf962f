package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleStats returns derived metrics for one billboard. Unknown ids
// yield all-zero stats rather than an error, so the endpoint answers
// best-effort identifiers the same way the aggregator does.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.StatsFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, stats)
}

// handleOverview returns fleet-wide dashboard KPIs.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		h.logger.Error("overview error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, overview)
}

// handleHourly returns the 24-entry hour-of-day series. It accepts
// optional `billboard_id` and `days_back` query parameters; days_back
// defaults to 1 and must be a positive integer.
func (h *Handler) handleHourly(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	daysBack := 1
	if raw := q.Get("days_back"); raw != "" {
		var err error
		if daysBack, err = strconv.Atoi(raw); err != nil || daysBack <= 0 {
			http.Error(w, "invalid days_back", http.StatusBadRequest)
			return
		}
	}
	points, err := h.svc.HourlyBuckets(r.Context(), q.Get("billboard_id"), daysBack)
	if err != nil {
		h.logger.Error("hourly series error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, points)
}

// handleDaily returns the 30-entry trailing calendar-day series,
// optionally scoped with `billboard_id`.
func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.DailyBuckets(r.Context(), r.URL.Query().Get("billboard_id"))
	if err != nil {
		h.logger.Error("daily series error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, points)
}

// handleDevices returns the device breakdown of real scans, optionally
// scoped with `billboard_id`.
func (h *Handler) handleDevices(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.svc.DeviceBreakdown(r.Context(), r.URL.Query().Get("billboard_id"))
	if err != nil {
		h.logger.Error("device breakdown error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, breakdown)
}
