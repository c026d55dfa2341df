package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"newsmap/pkg/domain"
)

// newsResponse is the envelope the map client consumes
type newsResponse struct {
	Success     bool                `json:"success"`
	Count       int                 `json:"count"`
	News        []domain.NewsRecord `json:"news"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// newsHandler runs an aggregation pass and returns the snapshot. This is
// the only place a failure surfaces to the client as success:false; per
// source and per translation failures are absorbed earlier in the pipeline.
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	target := resolveLocale(r.URL.Query().Get("locale"))

	result, err := s.aggregator.Run(r.Context(), target)
	if err != nil {
		log.Printf("[ERROR] aggregation failed: %v", err)
		renderError(w, r, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resp := newsResponse{
		Success:     true,
		Count:       len(result.Records),
		News:        result.Records,
		LastUpdated: result.LastUpdated,
	}
	if resp.News == nil {
		resp.News = []domain.NewsRecord{}
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// resolveLocale maps the request locale to a supported target language,
// anything unrecognized falls back to the primary locale
func resolveLocale(locale string) domain.Lang {
	if locale == "ja" {
		return domain.LangJA
	}
	return domain.LangEN
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends failure envelope as JSON
func renderError(w http.ResponseWriter, r *http.Request, msg string, code int) {
	renderJSON(w, r, code, map[string]interface{}{"success": false, "error": msg})
}
