package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/count", h.handleCount)
	mux.HandleFunc("/api/records", h.handleRecords)
}

// defaultSolutionLimit caps /api/solve responses unless the client asks
// for more; dates with hundreds of tilings would otherwise produce
// megabyte payloads.
const defaultSolutionLimit = 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseDate reads the month and day query parameters.
func parseDate(r *http.Request) (domain.Date, error) {
	q := r.URL.Query()
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: month %q", domain.ErrInvalidDate, q.Get("month"))
	}
	day, err := strconv.Atoi(q.Get("day"))
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: day %q", domain.ErrInvalidDate, q.Get("day"))
	}
	return domain.NewDate(month, day)
}

type solveResp struct {
	Date       string            `json:"date,omitempty"`
	Count      int               `json:"count"`
	Solutions  []domain.Solution `json:"solutions"`
	Truncated  bool              `json:"truncated,omitempty"`
	Nodes      int               `json:"nodes,omitempty"`
	DurationMs int64             `json:"durationMs,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	d, err := parseDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	limit := defaultSolutionLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, solveResp{Error: fmt.Sprintf("invalid limit %q", s)})
			return
		}
		limit = n
	}
	sols, stats, err := h.UC.SolveDate(r.Context(), d)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{
		Date:       d.String(),
		Count:      len(sols),
		Solutions:  sols,
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
	}
	if limit > 0 && len(sols) > limit {
		resp.Solutions = sols[:limit]
		resp.Truncated = true
	}
	writeJSON(w, http.StatusOK, resp)
}

type countResp struct {
	Date       string `json:"date,omitempty"`
	Count      int    `json:"count"`
	Nodes      int    `json:"nodes,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, countResp{Error: "method not allowed"})
		return
	}
	d, err := parseDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, countResp{Error: err.Error()})
		return
	}
	n, stats, err := h.UC.CountDate(r.Context(), d)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, countResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, countResp{
		Date:       d.String(),
		Count:      n,
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
	})
}

type recordsResp struct {
	Records []domain.RecordMeta `json:"records"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, recordsResp{Error: "method not allowed"})
		return
	}
	metas, err := h.UC.ListRecords(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, recordsResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.RecordMeta{}
	}
	writeJSON(w, http.StatusOK, recordsResp{Records: metas})
}
