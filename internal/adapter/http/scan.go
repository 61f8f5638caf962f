package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ooh-analytics/internal/core/domain"
)

// scanResponse is returned after a scan is logged. The campaign is
// included so the landing page can render the advertiser creative
// without a second round trip.
type scanResponse struct {
	Event    domain.ScanEvent `json:"event"`
	Campaign domain.Campaign  `json:"campaign"`
}

// conversionResponse carries the advertiser URL the client redirects to
// after a conversion is recorded.
type conversionResponse struct {
	TargetURL string `json:"targetUrl"`
}

// handleScan logs a real qr scan for the billboard in the path. The
// device type is derived from the request's User-Agent header. Unknown
// billboard ids produce HTTP 404: the QR code may be invalid or expired.
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	h.logScan(w, r, domain.SourceQR)
}

// handleSimulate logs an operator-triggered test scan. It behaves like
// handleScan but tags the event with the simulation provenance so it can
// be told apart from organic traffic.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	h.logScan(w, r, domain.SourceSimulation)
}

func (h *Handler) logScan(w http.ResponseWriter, r *http.Request, source domain.Source) {
	billboard, ok := h.findBillboard(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	event, err := h.svc.LogScan(r.Context(), billboard.ID, source, r.UserAgent(), false)
	if err != nil {
		h.logger.Error("log scan error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	h.writeJSON(w, scanResponse{Event: event, Campaign: billboard.Campaign})
}

// handleConversion attributes a conversion to the most recent eligible
// scan and returns the campaign target URL for the client-side redirect.
// A missing prior scan is not an error; the viewer is sent onward either
// way.
func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	billboard, ok := h.findBillboard(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.svc.RecordConversion(r.Context(), billboard.ID); err != nil {
		h.logger.Error("record conversion error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, conversionResponse{TargetURL: billboard.Campaign.TargetURL})
}

// handleRecentScans returns the latest real (non-seeded, non-bot) events
// for a billboard, newest first. The optional `limit` query parameter
// caps the feed; invalid values produce HTTP 400.
func (h *Handler) handleRecentScans(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	scans, err := h.svc.RecentRealScans(r.Context(), id, limit)
	if err != nil {
		h.logger.Error("recent scans error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, scans)
}

// handleBillboards lists the full reference catalog.
func (h *Handler) handleBillboards(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.billboards)
}

// handleBillboard returns one billboard together with its current stats,
// which is what the detail page renders.
func (h *Handler) handleBillboard(w http.ResponseWriter, r *http.Request) {
	billboard, ok := h.findBillboard(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	stats, err := h.svc.StatsFor(r.Context(), billboard.ID)
	if err != nil {
		h.logger.Error("billboard stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, struct {
		Billboard domain.Billboard      `json:"billboard"`
		Stats     domain.BillboardStats `json:"stats"`
	}{billboard, stats})
}
